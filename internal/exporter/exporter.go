// Package exporter 将汇总报表写成 xlsx。
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"propostas/internal/model"
)

const (
	SheetReport  = "Relatório"
	SheetMonthly = "Relatório Mensal"
)

// Exporter Excel 导出器
type Exporter struct {
	progress func(ProgressEvent)
}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// ReportHeaders 报表表头：负责人、标准列、额外状态、总数、通过率
func ReportHeaders(statuses []string) []string {
	headers := []string{model.ColumnNegotiator, model.ColumnApproved, model.ColumnDenied}
	headers = append(headers, statuses...)
	return append(headers, model.ColumnTotal, model.ColumnApprovalRate)
}

// ReportRow 按表头顺序展开一行
func ReportRow(row model.SummaryRow, statuses []string) []interface{} {
	out := []interface{}{row.Negotiator, row.Approved, row.Denied}
	for _, s := range statuses {
		out = append(out, row.Other[s])
	}
	return append(out, row.Total, row.ApprovalRate)
}

// WriteReport 生成单个报表工作簿
func (e *Exporter) WriteReport(r model.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetReport); err != nil {
		_ = f.Close()
		return nil, err
	}

	rows := make([][]interface{}, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, ReportRow(row, r.Statuses))
	}
	if err := writeTable(f, SheetReport, stringsToRow(ReportHeaders(r.Statuses)), rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// WriteMonthly 生成月度报表工作簿：首列为月份，额外状态取各月并集
func (e *Exporter) WriteMonthly(months []model.MonthlyReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetMonthly); err != nil {
		_ = f.Close()
		return nil, err
	}

	statuses := unionStatuses(months)
	header := append([]string{model.ColumnMonth}, ReportHeaders(statuses)...)

	rows := make([][]interface{}, 0)
	for i, m := range months {
		e.reportProgress(i*90/len(months), m.Month)
		for _, row := range m.Report.Rows {
			rows = append(rows, append([]interface{}{m.Month}, ReportRow(row, statuses)...))
		}
	}
	if err := writeTable(f, SheetMonthly, stringsToRow(header), rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// SaveReport 写入报表文件（自动创建目录）
func (e *Exporter) SaveReport(path string, r model.Report) error {
	f, err := e.WriteReport(r)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveAs(f, path)
}

// SaveMonthly 写入月度报表文件（自动创建目录）
func (e *Exporter) SaveMonthly(path string, months []model.MonthlyReport) error {
	f, err := e.WriteMonthly(months)
	if err != nil {
		return err
	}
	defer f.Close()

	e.reportProgress(90, "salvando")
	if err := saveAs(f, path); err != nil {
		return err
	}
	e.reportProgress(100, "salvando")
	return nil
}

// MonthFileName 单月报表文件名，如 Resultado_01_2025.xlsx
func MonthFileName(month string) string {
	return fmt.Sprintf("Resultado_%s.xlsx", strings.ReplaceAll(month, "/", "_"))
}

func saveAs(f *excelize.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	_ = f.SetColWidth(sheet, "A", "A", 30)
	if len(header) > 1 {
		_ = f.SetColWidth(sheet, "B", lastCol, 18)
	}
	return nil
}

func unionStatuses(months []model.MonthlyReport) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range months {
		for _, s := range m.Report.Statuses {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func stringsToRow(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
