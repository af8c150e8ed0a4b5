package parser

// SheetType phân loại sheet theo tên
type SheetType string

const (
	SheetTypeDistrict    SheetType = "district"
	SheetTypeLandType    SheetType = "land_type"
	SheetTypeLocation    SheetType = "location"
	SheetTypeArea        SheetType = "area"
	SheetTypeDepth       SheetType = "depth"
	SheetTypeFengShui    SheetType = "feng_shui"
	SheetTypeCoefficient SheetType = "coefficient" // broad bucket, preview only
	SheetTypeUnknown     SheetType = "unknown"
)

// Row is one data row of a sheet keyed by header name. Headers keeps the
// sheet's column order so case-insensitive lookups resolve leftmost-first.
// Empty cells are not present in Cells.
type Row struct {
	Headers []string
	Cells   map[string]string
}

// ParsedSegment một đoạn đường đã bóc tách, chưa khớp với dữ liệu trong DB
type ParsedSegment struct {
	StreetName        string  `json:"streetName"`
	SegmentFrom       string  `json:"segmentFrom"`
	SegmentTo         string  `json:"segmentTo"`
	BasePriceMin      float64 `json:"basePriceMin"`
	BasePriceMax      float64 `json:"basePriceMax"`
	GovernmentPrice   float64 `json:"governmentPrice"`
	AdjustmentCoefMin float64 `json:"adjustmentCoefMin"`
	AdjustmentCoefMax float64 `json:"adjustmentCoefMax"`
}

// ParsedDistrict một sheet quận/huyện đã bóc tách
type ParsedDistrict struct {
	DistrictName string          `json:"districtName"`
	Segments     []ParsedSegment `json:"segments"`
}

// CoefficientBase các trường chung của mọi loại hệ số.
// Code is the natural key used for upsert matching.
type CoefficientBase struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
}

// LandTypeCoefficient hệ số loại đất
type LandTypeCoefficient struct {
	CoefficientBase
	Description string `json:"description,omitempty"`
}

// LocationCoefficient hệ số vị trí, kèm khoảng độ rộng đường
type LocationCoefficient struct {
	CoefficientBase
	Description string  `json:"description,omitempty"`
	WidthMin    float64 `json:"widthMin"`
	WidthMax    float64 `json:"widthMax"`
}

// AreaCoefficient hệ số diện tích
type AreaCoefficient struct {
	CoefficientBase
	AreaMin float64 `json:"areaMin"`
	AreaMax float64 `json:"areaMax"`
}

// DepthCoefficient hệ số chiều sâu
type DepthCoefficient struct {
	CoefficientBase
	DepthMin float64 `json:"depthMin"`
	DepthMax float64 `json:"depthMax"`
}

// FengShuiCoefficient hệ số phong thủy
type FengShuiCoefficient struct {
	CoefficientBase
	Description string `json:"description,omitempty"`
}

// ParsedCoefficients toàn bộ hệ số bóc tách từ workbook, theo loại
type ParsedCoefficients struct {
	LandTypes []LandTypeCoefficient `json:"landTypes"`
	Locations []LocationCoefficient `json:"locations"`
	Areas     []AreaCoefficient     `json:"areas"`
	Depths    []DepthCoefficient    `json:"depths"`
	FengShuis []FengShuiCoefficient `json:"fengShuis"`
}

// ParsedExcel kết quả bóc tách đầy đủ một workbook.
// Errors accumulates non-fatal row and sheet level problems; the parse
// itself never aborts on them.
type ParsedExcel struct {
	Districts    []ParsedDistrict   `json:"districts"`
	Coefficients ParsedCoefficients `json:"coefficients"`
	Errors       []string           `json:"errors"`
}

// SheetPreview bản xem trước một sheet
type SheetPreview struct {
	Name     string     `json:"name"`
	Type     SheetType  `json:"type"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"rowCount"`
}

// WorkbookPreview bản xem trước toàn bộ workbook trước khi import
type WorkbookPreview struct {
	Sheets  []SheetPreview `json:"sheets"`
	IsValid bool           `json:"isValid"`
	Errors  []string       `json:"errors"`
}
