package api

import (
	"log"
	"time"

	"propostas/internal/dataset"
	"propostas/internal/store"
)

// LoadLogHook 把每次源表加载写入 load_logs
func LoadLogHook(st *store.Store) dataset.LoadHook {
	return func(snap *dataset.Snapshot, loadErr error) {
		id, err := st.CreateLoadLog(snap.LoadID, snap.Path, snap.Sheet, snap.StartedAt)
		if err != nil {
			log.Printf("记录加载日志失败: %v", err)
			return
		}

		status, message := store.LoadStatusSuccess, ""
		if loadErr != nil {
			status, message = store.LoadStatusError, loadErr.Error()
		}
		if err := st.CompleteLoadLog(id, snap.TotalRows, len(snap.Records), len(snap.Dropped), status, message, time.Now()); err != nil {
			log.Printf("更新加载日志失败: %v", err)
		}
	}
}
