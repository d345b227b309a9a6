package api

import (
	"github.com/gin-gonic/gin"

	"propostas/internal/dataset"
	"propostas/internal/report"
	"propostas/internal/store"
)

// Handler 看板 API 处理器
type Handler struct {
	data      *dataset.Dataset
	store     *store.Store // 未开启审计日志时为 nil
	vocab     report.Vocabulary
	exportDir string
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(data *dataset.Dataset, st *store.Store, vocab report.Vocabulary, exportDir string) *Handler {
	return &Handler{
		data:      data,
		store:     st,
		vocab:     vocab,
		exportDir: exportDir,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 筛选项
	router.GET("/options", h.GetOptions)

	// 报表
	router.GET("/report", h.GetReport)
	router.GET("/report/monthly", h.GetMonthlyReport)

	// 重新读取源表
	router.POST("/reload", h.Reload)

	// 导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
	router.GET("/exports", h.ListExports)
}
