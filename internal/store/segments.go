package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// SegmentPrices năm trường giá/hệ số có thể thay đổi khi import lại
type SegmentPrices struct {
	BasePriceMin      float64
	BasePriceMax      float64
	GovernmentPrice   float64
	AdjustmentCoefMin float64
	AdjustmentCoefMax float64
}

// FindSegmentID tìm đoạn đường theo khóa tự nhiên (đường, mốc đầu, mốc cuối)
func (s *Store) FindSegmentID(streetID int64, segmentFrom, segmentTo string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow(
		"SELECT id FROM segments WHERE street_id = ? AND segment_from = ? AND segment_to = ?",
		streetID, segmentFrom, segmentTo,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find segment: %w", err)
	}
	return id, true, nil
}

// InsertSegment thêm đoạn đường mới
func (s *Store) InsertSegment(streetID int64, segmentFrom, segmentTo string, prices SegmentPrices) error {
	_, err := s.db.Exec(`
		INSERT INTO segments (
			street_id, segment_from, segment_to,
			base_price_min, base_price_max, government_price,
			adjustment_coef_min, adjustment_coef_max
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		streetID, segmentFrom, segmentTo,
		prices.BasePriceMin, prices.BasePriceMax, prices.GovernmentPrice,
		prices.AdjustmentCoefMin, prices.AdjustmentCoefMax,
	)
	if err != nil {
		return fmt.Errorf("failed to insert segment: %w", err)
	}
	return nil
}

// UpdateSegmentPrices cập nhật giá của một đoạn đường đã có
func (s *Store) UpdateSegmentPrices(id int64, prices SegmentPrices) error {
	_, err := s.db.Exec(`
		UPDATE segments SET
			base_price_min = ?, base_price_max = ?, government_price = ?,
			adjustment_coef_min = ?, adjustment_coef_max = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		prices.BasePriceMin, prices.BasePriceMax, prices.GovernmentPrice,
		prices.AdjustmentCoefMin, prices.AdjustmentCoefMax,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update segment: %w", err)
	}
	return nil
}

// GetSegment đọc một đoạn đường theo id
func (s *Store) GetSegment(id int64) (*Segment, error) {
	seg := &Segment{}
	err := s.db.QueryRow(`
		SELECT id, street_id, segment_from, segment_to,
			base_price_min, base_price_max, government_price,
			adjustment_coef_min, adjustment_coef_max,
			created_at, updated_at
		FROM segments WHERE id = ?
	`, id).Scan(
		&seg.ID, &seg.StreetID, &seg.SegmentFrom, &seg.SegmentTo,
		&seg.BasePriceMin, &seg.BasePriceMax, &seg.GovernmentPrice,
		&seg.AdjustmentCoefMin, &seg.AdjustmentCoefMax,
		&seg.CreatedAt, &seg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}
	return seg, nil
}

// CountSegments đếm số đoạn đường
func (s *Store) CountSegments() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM segments").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count segments: %w", err)
	}
	return count, nil
}
