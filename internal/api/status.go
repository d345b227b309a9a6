package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Loaded       bool   `json:"loaded"`       // 源表是否已加载
	SourcePath   string `json:"sourcePath"`   // 源文件路径
	Sheet        string `json:"sheet"`        // 工作表名
	LoadID       string `json:"loadId"`       // 本次加载标识
	TotalRows    int    `json:"totalRows"`    // 非空数据行
	Records      int    `json:"records"`      // 有效记录数
	Dropped      int    `json:"dropped"`      // 日期无法解析而丢弃的行
	LastLoadTime string `json:"lastLoadTime"` // 最近一次成功加载时间
	Error        string `json:"error,omitempty"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	src := h.data.Source()
	resp := StatusResponse{
		SourcePath: src.Path,
		Sheet:      src.Sheet,
	}

	snap, err := h.data.Get()
	if err != nil {
		resp.Error = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Loaded = true
	resp.LoadID = snap.LoadID
	resp.TotalRows = snap.TotalRows
	resp.Records = len(snap.Records)
	resp.Dropped = len(snap.Dropped)
	resp.LastLoadTime = snap.LoadedAt.Format(time.RFC3339)

	if h.store != nil {
		if last, err := h.store.LastLoadLog(); err == nil && last != nil && last.CompletedAt != nil {
			resp.LastLoadTime = last.CompletedAt.Format(time.RFC3339)
		}
	}

	c.JSON(http.StatusOK, resp)
}
