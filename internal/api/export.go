package api

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"propostas/internal/exporter"
	"propostas/internal/model"
)

const (
	exportBaseName    = "relatorio_propostas"
	exportDownloadTTL = 10 * time.Minute
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportResponse struct {
	FilePath    string `json:"filePath"`
	Rows        int    `json:"rows"`
	DownloadURL string `json:"downloadUrl"`
}

// Export 将当前筛选的报表写入导出目录，返回一次性下载地址
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var f model.Filter
	if !bindFilter(c, &f, true) {
		return
	}

	r, err := h.buildFiltered(f)
	if err != nil {
		h.respondLoadError(c, err)
		return
	}
	if r.Empty() {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: noDataWarning})
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", exportBaseName, time.Now().Format("20060102_150405.000"))
	path := filepath.Join(h.exportDir, filename)
	if err := exporter.NewExporter().SaveReport(path, r); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Erro ao salvar o relatório: " + err.Error()})
		return
	}

	if h.store != nil {
		if _, err := h.store.CreateExportLog(path, f.Negotiator, f.Month, len(r.Rows), time.Now()); err != nil {
			log.Printf("记录导出日志失败: %v", err)
		}
	}

	token := h.downloads.put(path, exportBaseName+".xlsx", exportDownloadTTL)
	prefix := strings.TrimSuffix(c.Request.URL.Path, "/export")

	c.JSON(http.StatusOK, exportResponse{
		FilePath:    path,
		Rows:        len(r.Rows),
		DownloadURL: fmt.Sprintf("%s/export/download/%s", prefix, token),
	})
}

// DownloadExport 下载导出的报表（令牌一次有效）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Token ausente"})
		return
	}

	item, ok := h.downloads.take(token)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Link de download expirado"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Arquivo exportado não encontrado"})
		return
	}

	c.Header("Content-Disposition", buildExportContentDisposition(item.filename))
	c.Header("Content-Type", xlsxContentType)
	c.File(item.filePath)
}

// ListExports 最近的导出记录
// GET /api/exports
func (h *Handler) ListExports(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"items": []any{}})
		return
	}

	items, err := h.store.ListExportLogs(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func buildExportContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", filename, url.PathEscape(filename))
}
