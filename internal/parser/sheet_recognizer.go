package parser

import "strings"

// SheetRecognizer nhận diện loại sheet theo tên
type SheetRecognizer struct{}

// NewSheetRecognizer tạo bộ nhận diện
func NewSheetRecognizer() *SheetRecognizer {
	return &SheetRecognizer{}
}

// Từ khóa nhận diện, so khớp không phân biệt hoa thường
var (
	districtKeywords = []string{"quận", "huyện", "district"}
	landTypeKeywords = []string{"loại đất", "land_type"}
	locationKeywords = []string{"vị trí", "location"}
	areaKeywords     = []string{"diện tích", "area"}
	depthKeywords    = []string{"chiều sâu", "depth"}
	fengShuiKeywords = []string{"phong thủy", "feng_shui"}

	// preview chỉ cần biết sheet là hệ số, không cần loại cụ thể
	coefficientKeywords = []string{
		"loại đất", "vị trí", "diện tích", "chiều sâu", "phong thủy",
		"hệ số", "coefficient",
	}
)

// Recognize nhận diện loại sheet cụ thể.
// Checks run in a fixed order, district first, so a name carrying both a
// district token and a coefficient token always classifies as district.
func (r *SheetRecognizer) Recognize(sheetName string) SheetType {
	name := strings.ToLower(sheetName)

	switch {
	case containsAny(name, districtKeywords):
		return SheetTypeDistrict
	case containsAny(name, landTypeKeywords):
		return SheetTypeLandType
	case containsAny(name, locationKeywords):
		return SheetTypeLocation
	case containsAny(name, areaKeywords):
		return SheetTypeArea
	case containsAny(name, depthKeywords):
		return SheetTypeDepth
	case containsAny(name, fengShuiKeywords):
		return SheetTypeFengShui
	}
	return SheetTypeUnknown
}

// RecognizeBroad nhận diện loại sheet cho màn hình xem trước.
// Collapses all coefficient kinds into the broad coefficient bucket.
func (r *SheetRecognizer) RecognizeBroad(sheetName string) SheetType {
	name := strings.ToLower(sheetName)

	switch {
	case containsAny(name, districtKeywords):
		return SheetTypeDistrict
	case containsAny(name, coefficientKeywords):
		return SheetTypeCoefficient
	}
	return SheetTypeUnknown
}

// containsAny kiểm tra chuỗi có chứa bất kỳ từ khóa nào
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
