package parser

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func writeProposalWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
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

	path := filepath.Join(t.TempDir(), "propostas.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func TestLoadWorkbook_DateCells(t *testing.T) {
	t.Parallel()

	path := writeProposalWorkbook(t, "PROPOSTAS JUD 1", [][]interface{}{
		{"NEGOCIADOR", "STATUS", "DATA DO ENVIO DA PROPOSTA"},
		{"Ana", "Aprovada", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"Bruno", "Recusada", "07/02/2025"},
	})

	res, err := LoadWorkbook(path, "PROPOSTAS JUD 1", Options{})
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records=%d, want 2", len(res.Records))
	}
	if got := res.Records[0].MonthKey(); got != "01/2025" {
		t.Fatalf("month=%s, want 01/2025", got)
	}
	if got := res.Records[1].MonthKey(); got != "02/2025" {
		t.Fatalf("month=%s, want 02/2025", got)
	}
}

func TestLoadWorkbook_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), "PROPOSTAS JUD 1", Options{})
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}

	path := writeProposalWorkbook(t, "Outra", [][]interface{}{{"NEGOCIADOR"}})
	_, err = LoadWorkbook(path, "PROPOSTAS JUD 1", Options{})
	if !errors.Is(err, ErrMissingSheet) {
		t.Fatalf("expected ErrMissingSheet, got %v", err)
	}

	_, err = LoadWorkbook(path, "Outra", Options{})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}
