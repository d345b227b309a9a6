package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"propostas/internal/model"
	"propostas/internal/report"
)

const noDataWarning = "Não há dados para exibir com os filtros selecionados."

type reportResponse struct {
	Filter   model.Filter       `json:"filter"`
	Metrics  model.Metrics      `json:"metrics"`
	Statuses []string           `json:"statuses"`
	Rows     []model.SummaryRow `json:"rows"`
	Warning  string             `json:"warning,omitempty"`
}

type monthlyResponse struct {
	Filter model.Filter          `json:"filter"`
	Months []model.MonthlyReport `json:"months"`
}

// bindFilter 读取筛选条件（查询参数，可选 JSON 请求体），失败时已写入 400
func bindFilter(c *gin.Context, f *model.Filter, withBody bool) bool {
	if err := c.ShouldBindQuery(f); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Filtro inválido"})
		return false
	}
	if withBody && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(f); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Requisição inválida"})
			return false
		}
	}
	if f.MonthSelected() && !report.ValidMonthKey(f.Month) {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("Mês inválido: %s", f.Month),
			Hint:  "Use o formato MM/YYYY.",
		})
		return false
	}
	return true
}

// buildFiltered 读取缓存并按条件生成报表
func (h *Handler) buildFiltered(f model.Filter) (model.Report, error) {
	snap, err := h.data.Get()
	if err != nil {
		return model.Report{}, err
	}
	return report.BuildReport(report.ApplyFilter(snap.Records, f), h.vocab), nil
}

// GetReport 按负责人/月份筛选后的汇总报表
// GET /api/report?negotiator=&month=
func (h *Handler) GetReport(c *gin.Context) {
	var f model.Filter
	if !bindFilter(c, &f, false) {
		return
	}

	r, err := h.buildFiltered(f)
	if err != nil {
		h.respondLoadError(c, err)
		return
	}

	resp := reportResponse{
		Filter:   f,
		Metrics:  report.Summarize(r),
		Statuses: r.Statuses,
		Rows:     r.Rows,
	}
	if r.Empty() {
		resp.Warning = noDataWarning
	}
	c.JSON(http.StatusOK, resp)
}

// GetMonthlyReport 按月拆分的报表（可按负责人过滤）
// GET /api/report/monthly?negotiator=
func (h *Handler) GetMonthlyReport(c *gin.Context) {
	f := model.Filter{Negotiator: c.Query("negotiator")}

	snap, err := h.data.Get()
	if err != nil {
		h.respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, monthlyResponse{
		Filter: f,
		Months: report.MonthlyBreakdown(report.ApplyFilter(snap.Records, f), h.vocab),
	})
}
