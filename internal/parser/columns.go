package parser

import (
	"strconv"
	"strings"
)

// Tên cột có thể gặp trong các file giá đất, ưu tiên tiếng Việt trước
var (
	colStreetName  = []string{"tên đường", "đường", "street", "street_name", "ten_duong"}
	colSegmentFrom = []string{"từ", "đoạn từ", "from", "segment_from", "tu"}
	colSegmentTo   = []string{"đến", "đoạn đến", "to", "segment_to", "den"}
	colPriceMin    = []string{"giá min", "giá tối thiểu", "base_price_min", "gia_min", "price_min"}
	colPriceMax    = []string{"giá max", "giá tối đa", "base_price_max", "gia_max", "price_max"}
	colGovPrice    = []string{"giá nhà nước", "giá nn", "government_price", "gia_nn"}
	colCoefMin     = []string{"hệ số min", "hs min", "adjustment_coef_min", "coef_min"}
	colCoefMax     = []string{"hệ số max", "hs max", "adjustment_coef_max", "coef_max"}

	colCode        = []string{"mã", "code", "ma"}
	colCoefficient = []string{"hệ số", "coefficient", "he_so"}
	colDescription = []string{"mô tả", "description", "mo_ta"}
)

// findValue tìm giá trị theo danh sách tên cột khả dĩ.
// Each candidate is tried with an exact match first, then case-insensitively
// against the row's headers in column order. Candidate order encodes header
// priority, so the first candidate that hits anywhere wins.
func findValue(row Row, candidates []string) (string, bool) {
	for _, key := range candidates {
		if v, ok := row.Cells[key]; ok {
			return v, true
		}
		lower := strings.ToLower(key)
		for _, h := range row.Headers {
			if strings.ToLower(h) != lower {
				continue
			}
			if v, ok := row.Cells[h]; ok {
				return v, true
			}
		}
	}
	return "", false
}

// findNumber tìm giá trị số theo danh sách tên cột khả dĩ.
// Missing, empty and non-numeric cells all report absent, never zero;
// defaulting happens at the extraction layer.
func findNumber(row Row, candidates []string) (float64, bool) {
	raw, ok := findValue(row, candidates)
	if !ok {
		return 0, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// makeRow dựng Row từ dòng tiêu đề và một dòng dữ liệu.
// Cells beyond the header width and empty cells are dropped, matching how
// header-keyed rows behave in spreadsheet tooling.
func makeRow(headers, cells []string) Row {
	row := Row{Headers: headers, Cells: make(map[string]string, len(headers))}
	for i, h := range headers {
		if h == "" || i >= len(cells) {
			continue
		}
		v := strings.TrimSpace(cells[i])
		if v == "" {
			continue
		}
		// duplicated header: the leftmost column wins
		if _, exists := row.Cells[h]; exists {
			continue
		}
		row.Cells[h] = v
	}
	return row
}

// rowIsEmpty dòng không có ô nào có dữ liệu
func rowIsEmpty(row Row) bool {
	return len(row.Cells) == 0
}
