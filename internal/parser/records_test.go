package parser

import (
	"errors"
	"testing"

	"propostas/internal/model"
)

func TestParseRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"NEGOCIADOR", "STATUS", "DATA DO ENVIO DA PROPOSTA", "OBS"},
		{" Ana ", "Aprovada", "45662", "x"},
		{"", "Recusada", "06/01/2025"},
		{"Bruno", "", "2025-01-07"},
		{"Carla", "Aprovada", "ontem"},
		{"", "", ""},
		{},
	}

	res, err := ParseRows(rows, Options{})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if res.TotalRows != 4 {
		t.Fatalf("TotalRows=%d, want 4", res.TotalRows)
	}
	if len(res.Records) != 3 {
		t.Fatalf("records=%d, want 3", len(res.Records))
	}
	if len(res.Dropped) != 1 || res.Dropped[0].RowNo != 5 || res.Dropped[0].Value != "ontem" {
		t.Fatalf("unexpected dropped rows: %+v", res.Dropped)
	}

	first := res.Records[0]
	if first.Negotiator != "Ana" || first.RowNo != 2 || first.MonthKey() != "01/2025" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if res.Records[1].Negotiator != model.UndefinedLabel {
		t.Fatalf("blank negotiator=%q, want %q", res.Records[1].Negotiator, model.UndefinedLabel)
	}
	if res.Records[2].Status != model.UndefinedLabel {
		t.Fatalf("blank status=%q, want %q", res.Records[2].Status, model.UndefinedLabel)
	}
}

func TestParseRows_MissingColumn(t *testing.T) {
	t.Parallel()

	_, err := ParseRows([][]string{{"NEGOCIADOR", "DATA DO ENVIO DA PROPOSTA"}}, Options{})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	var mc *MissingColumnError
	if !errors.As(err, &mc) || mc.Column != ColumnStatus {
		t.Fatalf("expected missing STATUS, got %v", err)
	}
}

func TestParseRows_ColumnAliases(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"MAIO", "Unnamed: 1", "Unnamed: 2"},
		{"Ana", "Aprovada", "05/01/2025"},
	}

	res, err := ParseRows(rows, Options{ColumnAliases: map[string]string{
		"MAIO":       "NEGOCIADOR",
		"Unnamed: 1": "STATUS",
		"Unnamed: 2": "DATA DO ENVIO DA PROPOSTA",
	}})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].Negotiator != "Ana" {
		t.Fatalf("unexpected records: %+v", res.Records)
	}
}

func TestParseRows_EmptySheetAndHeaderOnly(t *testing.T) {
	t.Parallel()

	empty, err := ParseRows(nil, Options{})
	if err != nil || len(empty.Records) != 0 {
		t.Fatalf("empty sheet should be an empty dataset: %+v err=%v", empty, err)
	}

	res, err := ParseRows([][]string{{"negociador", "status", "data do envio da proposta"}}, Options{})
	if err != nil {
		t.Fatalf("header-only sheet should be valid: %v", err)
	}
	if len(res.Records) != 0 {
		t.Fatalf("expected no records, got %d", len(res.Records))
	}
}

func TestParseRows_NonNumericSerialsAreDropped(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"NEGOCIADOR", "STATUS", "DATA DO ENVIO DA PROPOSTA"},
		{"Ana", "Aprovada", "nan"},
		{"Bruno", "Recusada", "NaN"},
		{"Carla", "Aprovada", "0x1p4"},
		{"Davi", "Aprovada", "45662"},
	}

	res, err := ParseRows(rows, Options{})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].Negotiator != "Davi" {
		t.Fatalf("unexpected records: %+v", res.Records)
	}
	if len(res.Dropped) != 3 {
		t.Fatalf("dropped=%d, want 3: %+v", len(res.Dropped), res.Dropped)
	}
	for i, want := range []int{2, 3, 4} {
		if res.Dropped[i].RowNo != want {
			t.Fatalf("dropped[%d].RowNo=%d, want %d", i, res.Dropped[i].RowNo, want)
		}
	}
}
