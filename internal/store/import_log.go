package store

import "fmt"

// InsertImportLog ghi lại một lần chạy import
func (s *Store) InsertImportLog(log *ImportLog) error {
	success := 0
	if log.Success {
		success = 1
	}
	_, err := s.db.Exec(
		"INSERT INTO import_logs (id, filename, stats, error_count, success) VALUES (?, ?, ?, ?, ?)",
		log.ID, log.Filename, log.Stats, log.ErrorCount, success,
	)
	if err != nil {
		return fmt.Errorf("failed to insert import log: %w", err)
	}
	return nil
}

// CountImportLogs đếm số lần import đã ghi nhận
func (s *Store) CountImportLogs() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM import_logs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count import logs: %w", err)
	}
	return count, nil
}
