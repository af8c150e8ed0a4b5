package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// defaultPreviewRows số dòng dữ liệu tối đa hiển thị khi xem trước
const defaultPreviewRows = 10

// Parser bóc tách workbook giá đất
type Parser struct {
	recognizer  *SheetRecognizer
	previewRows int
}

// NewParser tạo parser với giới hạn xem trước mặc định
func NewParser() *Parser {
	return &Parser{
		recognizer:  NewSheetRecognizer(),
		previewRows: defaultPreviewRows,
	}
}

// SetPreviewRows đặt số dòng xem trước, giá trị <= 0 giữ mặc định
func (p *Parser) SetPreviewRows(n int) {
	if n > 0 {
		p.previewRows = n
	}
}

// Parse bóc tách toàn bộ dữ liệu từ workbook.
// The returned ParsedExcel is pure in-memory data; sheet and row level
// problems accumulate in Errors without aborting the parse. Only a
// workbook that cannot be opened at all is a hard error.
func (p *Parser) Parse(data []byte) (*ParsedExcel, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	result := &ParsedExcel{}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf(`Không thể đọc sheet "%s"`, sheetName))
			continue
		}
		// sheet không có dòng dữ liệu nào
		if len(rows) < 2 {
			result.Errors = append(result.Errors, fmt.Sprintf(`Sheet "%s" trống`, sheetName))
			continue
		}

		headers := rows[0]
		dataRows := make([]Row, 0, len(rows)-1)
		for _, cells := range rows[1:] {
			dataRows = append(dataRows, makeRow(headers, cells))
		}

		switch p.recognizer.Recognize(sheetName) {
		case SheetTypeDistrict:
			segments, errs := parseDistrictSheet(dataRows, sheetName)
			result.Errors = append(result.Errors, errs...)
			if len(segments) > 0 {
				result.Districts = append(result.Districts, ParsedDistrict{
					DistrictName: extractDistrictName(sheetName),
					Segments:     segments,
				})
			}
		case SheetTypeLandType:
			result.Coefficients.LandTypes = parseLandTypeSheet(dataRows)
		case SheetTypeLocation:
			result.Coefficients.Locations = parseLocationSheet(dataRows)
		case SheetTypeArea:
			result.Coefficients.Areas = parseAreaSheet(dataRows)
		case SheetTypeDepth:
			result.Coefficients.Depths = parseDepthSheet(dataRows)
		case SheetTypeFengShui:
			result.Coefficients.FengShuis = parseFengShuiSheet(dataRows)
		default:
			// sheet không nhận diện được: bỏ qua, không import
		}
	}

	return result, nil
}

// Preview quét workbook ở chế độ chỉ đọc để người vận hành xác nhận
// trước khi import. Cells are passed through verbatim, uncoerced.
func (p *Parser) Preview(data []byte) (*WorkbookPreview, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	preview := &WorkbookPreview{}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			preview.Errors = append(preview.Errors, fmt.Sprintf(`Không thể đọc sheet "%s"`, sheetName))
			continue
		}
		if len(rows) == 0 {
			preview.Errors = append(preview.Errors, fmt.Sprintf(`Sheet "%s" trống`, sheetName))
			continue
		}

		sample := rows[1:]
		if len(sample) > p.previewRows {
			sample = sample[:p.previewRows]
		}

		preview.Sheets = append(preview.Sheets, SheetPreview{
			Name:     sheetName,
			Type:     p.recognizer.RecognizeBroad(sheetName),
			Headers:  rows[0],
			Rows:     sample,
			RowCount: len(rows) - 1,
		})
	}

	preview.IsValid = len(preview.Errors) == 0 && len(preview.Sheets) > 0
	return preview, nil
}
