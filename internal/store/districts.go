package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// FindDistrictIDByName tìm quận/huyện theo tên, khớp chính xác
func (s *Store) FindDistrictIDByName(name string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM districts WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find district: %w", err)
	}
	return id, true, nil
}

// InsertDistrict thêm quận/huyện mới, trả về id
func (s *Store) InsertDistrict(code, name string, sortOrder int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO districts (code, name, sort_order) VALUES (?, ?, ?)",
		code, name, sortOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert district: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return id, nil
}

// CountDistricts đếm số quận/huyện
func (s *Store) CountDistricts() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM districts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count districts: %w", err)
	}
	return count, nil
}

// ClearResult số bản ghi đã xóa theo từng bảng
type ClearResult struct {
	Segments  int64 `json:"segments"`
	Streets   int64 `json:"streets"`
	Districts int64 `json:"districts"`
}

// ClearDistricts xóa toàn bộ cây quận/huyện -> đường -> đoạn đường.
// Deletes children first so foreign keys stay satisfied.
func (s *Store) ClearDistricts() (*ClearResult, error) {
	result := &ClearResult{}

	res, err := s.db.Exec("DELETE FROM segments")
	if err != nil {
		return nil, fmt.Errorf("failed to delete segments: %w", err)
	}
	result.Segments, _ = res.RowsAffected()

	res, err = s.db.Exec("DELETE FROM streets")
	if err != nil {
		return nil, fmt.Errorf("failed to delete streets: %w", err)
	}
	result.Streets, _ = res.RowsAffected()

	res, err = s.db.Exec("DELETE FROM districts")
	if err != nil {
		return nil, fmt.Errorf("failed to delete districts: %w", err)
	}
	result.Districts, _ = res.RowsAffected()

	return result, nil
}
