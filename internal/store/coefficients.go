package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Năm bảng hệ số, mỗi bảng upsert theo cột code
const (
	TableLandTypeCoefficients = "land_type_coefficients"
	TableLocationCoefficients = "location_coefficients"
	TableAreaCoefficients     = "area_coefficients"
	TableDepthCoefficients    = "depth_coefficients"
	TableFengShuiCoefficients = "feng_shui_coefficients"
)

var coefficientTables = map[string]bool{
	TableLandTypeCoefficients: true,
	TableLocationCoefficients: true,
	TableAreaCoefficients:     true,
	TableDepthCoefficients:    true,
	TableFengShuiCoefficients: true,
}

func checkCoefficientTable(table string) error {
	if !coefficientTables[table] {
		return fmt.Errorf("unknown coefficient table: %s", table)
	}
	return nil
}

// FindCoefficientIDByCode tìm hệ số theo mã trong một bảng
func (s *Store) FindCoefficientIDByCode(table, code string) (int64, bool, error) {
	if err := checkCoefficientTable(table); err != nil {
		return 0, false, err
	}
	var id int64
	err := s.db.QueryRow("SELECT id FROM "+table+" WHERE code = ?", code).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find coefficient: %w", err)
	}
	return id, true, nil
}

// InsertCoefficient thêm một hệ số mới với các cột trong fields
func (s *Store) InsertCoefficient(table string, fields map[string]interface{}) error {
	if err := checkCoefficientTable(table); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	cols := sortedKeys(fields)
	placeholders := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i] = fields[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert coefficient: %w", err)
	}
	return nil
}

// UpdateCoefficient cập nhật các cột trong fields cho một hệ số đã có
func (s *Store) UpdateCoefficient(table string, id int64, fields map[string]interface{}) error {
	if err := checkCoefficientTable(table); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	cols := sortedKeys(fields)
	setClauses := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+1)
	for _, col := range cols {
		setClauses = append(setClauses, col+" = ?")
		args = append(args, fields[col])
	}
	setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?",
		table, strings.Join(setClauses, ", "))

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update coefficient: %w", err)
	}
	return nil
}

// CountCoefficients đếm số hệ số trong một bảng
func (s *Store) CountCoefficients(table string) (int, error) {
	if err := checkCoefficientTable(table); err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count coefficients: %w", err)
	}
	return count, nil
}

// sortedKeys thứ tự cột ổn định để câu SQL sinh ra có thể dự đoán được
func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
