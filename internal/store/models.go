package store

import "time"

// District quận/huyện
type District struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Street đường, thuộc một quận/huyện
type Street struct {
	ID         int64     `json:"id"`
	DistrictID int64     `json:"districtId"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Segment đoạn đường có giá, giới hạn bởi hai mốc đầu/cuối
type Segment struct {
	ID                int64     `json:"id"`
	StreetID          int64     `json:"streetId"`
	SegmentFrom       string    `json:"segmentFrom"`
	SegmentTo         string    `json:"segmentTo"`
	BasePriceMin      float64   `json:"basePriceMin"`
	BasePriceMax      float64   `json:"basePriceMax"`
	GovernmentPrice   float64   `json:"governmentPrice"`
	AdjustmentCoefMin float64   `json:"adjustmentCoefMin"`
	AdjustmentCoefMax float64   `json:"adjustmentCoefMax"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ImportLog một lần chạy import
type ImportLog struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Stats      string    `json:"stats"` // JSON thống kê created/updated
	ErrorCount int       `json:"errorCount"`
	Success    bool      `json:"success"`
	CreatedAt  time.Time `json:"createdAt"`
}
