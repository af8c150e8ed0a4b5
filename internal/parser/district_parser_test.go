package parser

import "testing"

var segmentHeaders = []string{"tên đường", "từ", "đến", "giá min", "giá max", "giá nhà nước", "hệ số min", "hệ số max"}

func TestParseDistrictSheet_FullRow(t *testing.T) {
	t.Parallel()

	rows := []Row{
		makeRow(segmentHeaders, []string{"Lê Lợi", "Nguyễn Huệ", "Pasteur", "50000000", "80000000", "30000000", "0.9", "1.5"}),
	}

	segments, errs := parseDistrictSheet(rows, "Quận 1")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(segments) != 1 {
		t.Fatalf("unexpected segment count: %d", len(segments))
	}

	want := ParsedSegment{
		StreetName:        "Lê Lợi",
		SegmentFrom:       "Nguyễn Huệ",
		SegmentTo:         "Pasteur",
		BasePriceMin:      50000000,
		BasePriceMax:      80000000,
		GovernmentPrice:   30000000,
		AdjustmentCoefMin: 0.9,
		AdjustmentCoefMax: 1.5,
	}
	if segments[0] != want {
		t.Fatalf("unexpected segment: %+v", segments[0])
	}
}

func TestParseDistrictSheet_MissingStreetName(t *testing.T) {
	t.Parallel()

	rows := []Row{
		makeRow(segmentHeaders, []string{"Lê Lợi", "A", "B", "100", "", "", "", ""}),
		makeRow(segmentHeaders, []string{"", "C", "D", "200", "", "", "", ""}),
		makeRow(segmentHeaders, []string{"Nguyễn Huệ", "E", "F", "300", "", "", "", ""}),
	}

	segments, errs := parseDistrictSheet(rows, "Quận 5")

	if len(segments) != 2 {
		t.Fatalf("unexpected segment count: %d", len(segments))
	}
	if len(errs) != 1 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	// dòng 3 trên Excel: 1-indexed cộng dòng tiêu đề
	want := "[Quận 5] Dòng 3: Thiếu tên đường"
	if errs[0] != want {
		t.Fatalf("unexpected error message: %q, want %q", errs[0], want)
	}
}

func TestParseDistrictSheet_PriceMaxDefaultsToMin(t *testing.T) {
	t.Parallel()

	rows := []Row{
		makeRow(segmentHeaders, []string{"Lê Lợi", "A", "B", "100", "", "", "", ""}),
	}

	segments, _ := parseDistrictSheet(rows, "Quận 1")
	if len(segments) != 1 {
		t.Fatalf("unexpected segment count: %d", len(segments))
	}
	// chỉ ghi một giá: khoảng giá là một điểm, không phải 0
	if segments[0].BasePriceMin != 100 || segments[0].BasePriceMax != 100 {
		t.Fatalf("unexpected prices: min=%v max=%v", segments[0].BasePriceMin, segments[0].BasePriceMax)
	}
}

func TestParseDistrictSheet_BoundarySentinels(t *testing.T) {
	t.Parallel()

	rows := []Row{
		makeRow(segmentHeaders, []string{"Lê Lợi", "", "", "100", "", "", "", ""}),
	}

	segments, _ := parseDistrictSheet(rows, "Quận 1")
	if len(segments) != 1 {
		t.Fatalf("unexpected segment count: %d", len(segments))
	}
	if segments[0].SegmentFrom != DefaultSegmentFrom || segments[0].SegmentTo != DefaultSegmentTo {
		t.Fatalf("unexpected boundaries: %q -> %q", segments[0].SegmentFrom, segments[0].SegmentTo)
	}
}

func TestParseDistrictSheet_Defaults(t *testing.T) {
	t.Parallel()

	rows := []Row{
		makeRow([]string{"tên đường"}, []string{"Lê Lợi"}),
	}

	segments, errs := parseDistrictSheet(rows, "Quận 1")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	seg := segments[0]
	if seg.BasePriceMin != 0 || seg.BasePriceMax != 0 || seg.GovernmentPrice != 0 {
		t.Fatalf("unexpected price defaults: %+v", seg)
	}
	if seg.AdjustmentCoefMin != 1 || seg.AdjustmentCoefMax != 1 {
		t.Fatalf("unexpected coef defaults: %+v", seg)
	}
}

func TestParseDistrictSheet_SkipsBlankRows(t *testing.T) {
	t.Parallel()

	rows := []Row{
		makeRow(segmentHeaders, []string{"", "", "", "", "", "", "", ""}),
		makeRow(segmentHeaders, []string{"Lê Lợi", "A", "B", "100", "", "", "", ""}),
	}

	segments, errs := parseDistrictSheet(rows, "Quận 1")
	if len(errs) != 0 {
		t.Fatalf("blank row must not produce an error: %v", errs)
	}
	if len(segments) != 1 {
		t.Fatalf("unexpected segment count: %d", len(segments))
	}
}

func TestExtractDistrictName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sheetName string
		want      string
	}{
		{"Quận 1", "1"},
		{"Huyện Bình Chánh", "Bình Chánh"},
		{"Q.3", "3"},
		{"District 9", "9"},
		{"quận đống đa", "Đống đa"},
		// không còn gì sau khi bỏ tiền tố: giữ nguyên tên sheet
		{"Quận", "Quận"},
	}

	for _, tt := range tests {
		if got := extractDistrictName(tt.sheetName); got != tt.want {
			t.Errorf("extractDistrictName(%q) = %q, want %q", tt.sheetName, got, tt.want)
		}
	}
}
