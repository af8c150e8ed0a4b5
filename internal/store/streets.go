package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// FindStreetID tìm đường theo quận/huyện và tên
func (s *Store) FindStreetID(districtID int64, name string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow(
		"SELECT id FROM streets WHERE district_id = ? AND name = ?",
		districtID, name,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find street: %w", err)
	}
	return id, true, nil
}

// InsertStreet thêm đường mới, trả về id
func (s *Store) InsertStreet(districtID int64, code, name string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO streets (district_id, code, name) VALUES (?, ?, ?)",
		districtID, code, name,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert street: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return id, nil
}

// CountStreets đếm số đường
func (s *Store) CountStreets() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM streets").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count streets: %w", err)
	}
	return count, nil
}
