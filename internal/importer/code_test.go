package importer

import (
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Quận Đống Đa", "quan_dong_da"},
		{"Lê Lợi", "le_loi"},
		{"Đường Nguyễn Thị Minh Khai", "duong_nguyen_thi_minh_khai"},
		{"Phường 7 - Quận 3!", "phuong_7_quan_3"},
		{"  Huyện   Củ Chi  ", "huyen_cu_chi"},
		{"ABC", "abc"},
		{"123", "123"},
	}

	for _, tt := range tests {
		if got := GenerateCode(tt.name); got != tt.want {
			t.Errorf("GenerateCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGenerateCode_Truncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("Đường Rất Dài ", 10)
	got := GenerateCode(long)

	if len(got) > 50 {
		t.Fatalf("code too long: %d (%q)", len(got), got)
	}
	if strings.HasPrefix(got, "_") || strings.HasSuffix(got, "_") {
		t.Fatalf("code has dangling underscore: %q", got)
	}
}

func TestGenerateCode_Deterministic(t *testing.T) {
	t.Parallel()

	a := GenerateCode("Quận Bình Thạnh")
	b := GenerateCode("Quận Bình Thạnh")
	if a != b || a == "" {
		t.Fatalf("unexpected codes: %q vs %q", a, b)
	}
}
