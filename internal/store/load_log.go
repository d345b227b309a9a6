package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// 加载状态
const (
	LoadStatusProcessing = "processing"
	LoadStatusSuccess    = "success"
	LoadStatusError      = "error"
)

// LoadLog 源表加载日志
type LoadLog struct {
	ID           int64      `json:"id"`
	LoadID       string     `json:"loadId"`
	SourcePath   string     `json:"sourcePath"`
	Sheet        string     `json:"sheet"`
	TotalRows    int        `json:"totalRows"`
	ImportedRows int        `json:"importedRows"`
	DroppedRows  int        `json:"droppedRows"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// CreateLoadLog 创建加载日志，返回日志 id
func (s *Store) CreateLoadLog(loadID, sourcePath, sheet string, startedAt time.Time) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO load_logs (load_id, source_path, sheet, status, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, loadID, sourcePath, sheet, LoadStatusProcessing, startedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create load log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get load log id: %w", err)
	}
	return id, nil
}

// CompleteLoadLog 完成加载日志更新
func (s *Store) CompleteLoadLog(id int64, totalRows, importedRows, droppedRows int, status, errorMessage string, completedAt time.Time) error {
	_, err := s.db.Exec(`
		UPDATE load_logs SET
			total_rows = ?,
			imported_rows = ?,
			dropped_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = ?
		WHERE id = ?
	`, totalRows, importedRows, droppedRows, status, errorMessage, completedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update load log: %w", err)
	}
	return nil
}

// LastLoadLog 最近一次成功的加载；没有记录时返回 nil
func (s *Store) LastLoadLog() (*LoadLog, error) {
	row := s.db.QueryRow(`
		SELECT id, load_id, source_path, sheet, total_rows, imported_rows, dropped_rows,
			status, error_message, started_at, completed_at
		FROM load_logs
		WHERE status = ?
		ORDER BY id DESC
		LIMIT 1
	`, LoadStatusSuccess)

	var (
		it          LoadLog
		completedAt sql.NullTime
	)
	err := row.Scan(&it.ID, &it.LoadID, &it.SourcePath, &it.Sheet, &it.TotalRows, &it.ImportedRows,
		&it.DroppedRows, &it.Status, &it.ErrorMessage, &it.StartedAt, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last load log failed: %w", err)
	}
	if completedAt.Valid {
		t := completedAt.Time
		it.CompletedAt = &t
	}
	return &it, nil
}
