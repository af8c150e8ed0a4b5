package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Nhãn mặc định khi dòng không ghi mốc đầu/cuối đoạn.
// Segments still need a stable, non-empty boundary pair for natural-key
// matching downstream.
const (
	DefaultSegmentFrom = "Đầu đường"
	DefaultSegmentTo   = "Cuối đường"
)

var districtPrefixRe = regexp.MustCompile(`(?i)^(quận|huyện|q\.|h\.)`)
var districtWordRe = regexp.MustCompile(`(?i)district`)

// parseDistrictSheet bóc tách các đoạn đường từ một sheet quận/huyện.
// Rows missing a street name are skipped with a row-level error; every
// other field falls back to its documented default. Fully blank rows are
// ignored without an error.
func parseDistrictSheet(rows []Row, sheetName string) ([]ParsedSegment, []string) {
	var segments []ParsedSegment
	var errs []string

	for i, row := range rows {
		if rowIsEmpty(row) {
			continue
		}
		// số dòng Excel: 1-indexed, cộng thêm dòng tiêu đề
		rowNum := i + 2

		streetName, ok := findValue(row, colStreetName)
		if !ok {
			errs = append(errs, fmt.Sprintf("[%s] Dòng %d: Thiếu tên đường", sheetName, rowNum))
			continue
		}

		segmentFrom, ok := findValue(row, colSegmentFrom)
		if !ok {
			segmentFrom = DefaultSegmentFrom
		}
		segmentTo, ok := findValue(row, colSegmentTo)
		if !ok {
			segmentTo = DefaultSegmentTo
		}

		basePriceMin, ok := findNumber(row, colPriceMin)
		if !ok {
			basePriceMin = 0
		}
		// dòng chỉ ghi một giá: khoảng giá co về một điểm
		basePriceMax, ok := findNumber(row, colPriceMax)
		if !ok {
			basePriceMax = basePriceMin
		}
		governmentPrice, ok := findNumber(row, colGovPrice)
		if !ok {
			governmentPrice = 0
		}
		adjustmentCoefMin, ok := findNumber(row, colCoefMin)
		if !ok {
			adjustmentCoefMin = 1
		}
		adjustmentCoefMax, ok := findNumber(row, colCoefMax)
		if !ok {
			adjustmentCoefMax = 1
		}

		segments = append(segments, ParsedSegment{
			StreetName:        streetName,
			SegmentFrom:       segmentFrom,
			SegmentTo:         segmentTo,
			BasePriceMin:      basePriceMin,
			BasePriceMax:      basePriceMax,
			GovernmentPrice:   governmentPrice,
			AdjustmentCoefMin: adjustmentCoefMin,
			AdjustmentCoefMax: adjustmentCoefMax,
		})
	}

	return segments, errs
}

// extractDistrictName lấy tên quận/huyện từ tên sheet.
// Strips the common quận/huyện prefixes, capitalizes the first rune and
// falls back to the raw sheet name when nothing is left.
func extractDistrictName(sheetName string) string {
	name := districtPrefixRe.ReplaceAllString(sheetName, "")
	name = districtWordRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	if name == "" {
		return sheetName
	}

	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
