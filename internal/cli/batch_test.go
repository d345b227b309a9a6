package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"propostas/internal/config"
	"propostas/internal/exporter"
	"propostas/internal/model"
	"propostas/internal/parser"
	"propostas/internal/report"
)

func writeSource(t *testing.T, dir string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := "PROPOSTAS JUD 1"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	path := filepath.Join(dir, "PROPOSTAS 2025.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Source.Path = writeSource(t, dir, [][]interface{}{
		{"NEGOCIADOR", "STATUS", "DATA DO ENVIO DA PROPOSTA"},
		{"Ana", "Aprovada", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"Ana", "Recusada", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)},
		{"Bruno", "Aprovada", time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC)},
		{"vazio ", "Aprovada", time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)},
	})
	cfg.Output.Dir = filepath.Join(dir, "resultados")
	return cfg
}

func readReportSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile %s failed: %v", path, err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	return rows
}

func TestRun_NoFilters(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	r := NewRunner(cfg, cfg.Vocabulary(), strings.NewReader("N\n\n"), &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Valores únicos na coluna STATUS:",
		"['Aprovada' 'Recusada']",
		"Negociadores disponíveis:",
		"Análise concluída!",
		"Meses disponíveis para filtro:",
		"['01/2025' '02/2025']",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}

	rows := readReportSheet(t, cfg.GeneralOutputPath(), exporter.SheetReport)
	if len(rows) != 3 {
		t.Fatalf("general rows=%d, want header + 2", len(rows))
	}
	if rows[1][0] != "Ana" || rows[2][0] != "Bruno" {
		t.Fatalf("unexpected order: %v", rows)
	}
	if _, err := os.Stat(cfg.MonthlyOutputPath()); err != nil {
		t.Fatalf("monthly report missing: %v", err)
	}
}

func TestRun_NegotiatorAndMonth(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	r := NewRunner(cfg, cfg.Vocabulary(), strings.NewReader("s\nAna\n01/2025\n"), &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Filtrando dados para o negociador: Ana") {
		t.Fatalf("missing filter message:\n%s", text)
	}
	if !strings.Contains(text, "Resultado para o mês 01/2025:") {
		t.Fatalf("missing month header:\n%s", text)
	}
	if !strings.Contains(text, "50.00") {
		t.Fatalf("missing approval rate:\n%s", text)
	}

	monthPath := filepath.Join(cfg.Output.Dir, "Resultado_01_2025.xlsx")
	rows := readReportSheet(t, monthPath, exporter.SheetReport)
	if len(rows) != 2 || rows[1][0] != "Ana" {
		t.Fatalf("unexpected month rows: %v", rows)
	}

	general := readReportSheet(t, cfg.GeneralOutputPath(), exporter.SheetReport)
	if len(general) != 2 {
		t.Fatalf("general rows=%d, want header + Ana", len(general))
	}
}

func TestRun_MonthWithoutData(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	r := NewRunner(cfg, cfg.Vocabulary(), strings.NewReader("N\n12/2024\n"), &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Não há dados para exibir") {
		t.Fatalf("expected empty warning:\n%s", out.String())
	}
	rows := readReportSheet(t, filepath.Join(cfg.Output.Dir, "Resultado_12_2024.xlsx"), exporter.SheetReport)
	if len(rows) != 1 || rows[0][0] != model.ColumnNegotiator {
		t.Fatalf("empty month should be written with header only: %v", rows)
	}
}

func TestRun_InvalidMonthWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	r := NewRunner(cfg, cfg.Vocabulary(), strings.NewReader("N\n../2025\n"), &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Mês inválido: ../2025") {
		t.Fatalf("expected invalid month message:\n%s", out.String())
	}
	entries, err := os.ReadDir(cfg.Output.Dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("only general and monthly reports expected, got %d files", len(entries))
	}
}

func TestRun_MissingSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source.Path = filepath.Join(t.TempDir(), "missing.xlsx")

	r := NewRunner(cfg, cfg.Vocabulary(), strings.NewReader(""), &bytes.Buffer{})
	err := r.Run()
	if !errors.Is(err, parser.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}

func TestPrintReport(t *testing.T) {
	rep := report.BuildReport([]model.ProposalRecord{
		{Negotiator: "Ana", Status: "Aprovada"},
		{Negotiator: "Ana", Status: "Pendente"},
		{Negotiator: "Bruno", Status: "Recusada"},
	}, report.DefaultVocabulary())

	var buf bytes.Buffer
	if err := PrintReport(&buf, rep); err != nil {
		t.Fatalf("PrintReport failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines=%d, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Pendente") || !strings.Contains(lines[0], model.ColumnApprovalRate) {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "100.00") {
		t.Fatalf("unexpected Ana row: %q", lines[1])
	}
}
