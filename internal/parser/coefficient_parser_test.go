package parser

import "testing"

func TestParseLocationSheet(t *testing.T) {
	t.Parallel()

	headers := []string{"mã", "tên", "hệ số", "mô tả", "độ rộng min", "độ rộng max"}
	rows := []Row{
		makeRow(headers, []string{"VT1", "Mặt tiền", "1.2", "Đường chính", "5", "20"}),
		makeRow(headers, []string{"VT2", "Hẻm", "", "", "", ""}),
		// thiếu mã: bỏ qua, không báo lỗi
		makeRow(headers, []string{"", "Không mã", "1", "", "", ""}),
	}

	got := parseLocationSheet(rows)
	if len(got) != 2 {
		t.Fatalf("unexpected count: %d", len(got))
	}

	first := got[0]
	if first.Code != "VT1" || first.Name != "Mặt tiền" || first.Coefficient != 1.2 {
		t.Fatalf("unexpected record: %+v", first)
	}
	if first.Description != "Đường chính" || first.WidthMin != 5 || first.WidthMax != 20 {
		t.Fatalf("unexpected record: %+v", first)
	}

	// mọi trường vắng mặt nhận giá trị mặc định
	second := got[1]
	if second.Coefficient != 1 || second.WidthMin != 0 || second.WidthMax != 999 {
		t.Fatalf("unexpected defaults: %+v", second)
	}
	if second.Description != "" {
		t.Fatalf("unexpected description: %q", second.Description)
	}
}

func TestParseLandTypeSheet(t *testing.T) {
	t.Parallel()

	headers := []string{"mã", "loại đất", "hệ số", "mô tả"}
	rows := []Row{
		makeRow(headers, []string{"DAT01", "Đất ở", "1.0", "Đất thổ cư"}),
		// thiếu tên: bỏ qua
		makeRow(headers, []string{"DAT02", "", "2", ""}),
	}

	got := parseLandTypeSheet(rows)
	if len(got) != 1 {
		t.Fatalf("unexpected count: %d", len(got))
	}
	if got[0].Code != "DAT01" || got[0].Name != "Đất ở" || got[0].Description != "Đất thổ cư" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
}

func TestParseAreaSheet_RangeSentinels(t *testing.T) {
	t.Parallel()

	headers := []string{"mã", "tên", "hệ số", "diện tích min", "diện tích max"}
	rows := []Row{
		makeRow(headers, []string{"DT1", "Nhỏ", "0.9", "0", "50"}),
		makeRow(headers, []string{"DT2", "Không giới hạn", "", "", ""}),
	}

	got := parseAreaSheet(rows)
	if len(got) != 2 {
		t.Fatalf("unexpected count: %d", len(got))
	}
	if got[0].AreaMin != 0 || got[0].AreaMax != 50 {
		t.Fatalf("unexpected range: %+v", got[0])
	}
	// khoảng không ghi rõ: khớp mọi diện tích
	if got[1].AreaMin != 0 || got[1].AreaMax != 99999 {
		t.Fatalf("unexpected sentinel range: %+v", got[1])
	}
}

func TestParseDepthSheet_RangeSentinels(t *testing.T) {
	t.Parallel()

	headers := []string{"mã", "tên", "hệ số", "chiều sâu min", "chiều sâu max"}
	rows := []Row{
		makeRow(headers, []string{"CS1", "Sâu", "0.8", "", ""}),
	}

	got := parseDepthSheet(rows)
	if len(got) != 1 {
		t.Fatalf("unexpected count: %d", len(got))
	}
	if got[0].DepthMin != 0 || got[0].DepthMax != 999 {
		t.Fatalf("unexpected sentinel range: %+v", got[0])
	}
}

func TestParseFengShuiSheet(t *testing.T) {
	t.Parallel()

	headers := []string{"mã", "tên", "hệ số", "mô tả"}
	rows := []Row{
		makeRow(headers, []string{"PT1", "Hướng Đông", "1.1", "Hướng tốt"}),
	}

	got := parseFengShuiSheet(rows)
	if len(got) != 1 {
		t.Fatalf("unexpected count: %d", len(got))
	}
	if got[0].Code != "PT1" || got[0].Coefficient != 1.1 || got[0].Description != "Hướng tốt" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
}
