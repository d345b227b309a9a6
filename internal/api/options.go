package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propostas/internal/model"
	"propostas/internal/report"
)

type optionsResponse struct {
	Negotiators []string `json:"negotiators"`
	Months      []string `json:"months"`
}

// GetOptions 筛选下拉选项，首项均为 "Todos"
// GET /api/options
func (h *Handler) GetOptions(c *gin.Context) {
	snap, err := h.data.Get()
	if err != nil {
		h.respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, optionsResponse{
		Negotiators: append([]string{model.FilterAll}, report.Negotiators(snap.Records)...),
		Months:      append([]string{model.FilterAll}, report.MonthKeys(snap.Records)...),
	})
}
