package store

import (
	"fmt"
	"time"
)

// ExportLog 报表导出日志
type ExportLog struct {
	ID         int64     `json:"id"`
	FilePath   string    `json:"filePath"`
	Negotiator string    `json:"negotiator"`
	Month      string    `json:"month"`
	RowCount   int       `json:"rowCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateExportLog 记录一次导出
func (s *Store) CreateExportLog(filePath, negotiator, month string, rowCount int, createdAt time.Time) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO export_logs (file_path, negotiator, month, row_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, filePath, negotiator, month, rowCount, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create export log: %w", err)
	}
	return res.LastInsertId()
}

// ListExportLogs 最近的导出记录（按时间倒序）
func (s *Store) ListExportLogs(limit int) ([]ExportLog, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, file_path, negotiator, month, row_count, created_at
		FROM export_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query export logs failed: %w", err)
	}
	defer rows.Close()

	out := make([]ExportLog, 0)
	for rows.Next() {
		var it ExportLog
		if err := rows.Scan(&it.ID, &it.FilePath, &it.Negotiator, &it.Month, &it.RowCount, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export log failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate export logs failed: %w", err)
	}
	return out, nil
}
