package report

import (
	"testing"

	"propostas/internal/model"
)

func sampleRecords() []model.ProposalRecord {
	return []model.ProposalRecord{
		rec("Ana", "Aprovada", 2025, 1, 5),
		rec("Ana", "Recusada", 2025, 2, 6),
		rec("Bruno", "Aprovada", 2025, 1, 7),
		rec("Carla", "Recusada", 2025, 2, 8),
	}
}

func TestApplyFilter_AllKeepsEverything(t *testing.T) {
	t.Parallel()

	in := sampleRecords()
	for _, f := range []model.Filter{{}, {Negotiator: model.FilterAll, Month: model.FilterAll}} {
		if got := ApplyFilter(in, f); len(got) != len(in) {
			t.Fatalf("filter %+v kept %d, want %d", f, len(got), len(in))
		}
	}
}

func TestApplyFilter_NegotiatorYieldsSingleRow(t *testing.T) {
	t.Parallel()

	filtered := ApplyFilter(sampleRecords(), model.Filter{Negotiator: "Ana"})
	got := BuildReport(filtered, DefaultVocabulary())
	if len(got.Rows) != 1 || got.Rows[0].Negotiator != "Ana" {
		t.Fatalf("unexpected rows: %+v", got.Rows)
	}
	if got.Rows[0].Total != 2 {
		t.Fatalf("Ana total=%d, want 2", got.Rows[0].Total)
	}
}

func TestApplyFilter_MonthWithoutRecordsIsEmptyReport(t *testing.T) {
	t.Parallel()

	filtered := ApplyFilter(sampleRecords(), model.Filter{Month: "07/2025"})
	if len(filtered) != 0 {
		t.Fatalf("expected no records, got %d", len(filtered))
	}
	if got := BuildReport(filtered, DefaultVocabulary()); !got.Empty() {
		t.Fatalf("expected empty report, got %+v", got)
	}
}

func TestApplyFilter_CombinedAndPure(t *testing.T) {
	t.Parallel()

	in := sampleRecords()
	got := ApplyFilter(in, model.Filter{Negotiator: "Ana", Month: "02/2025"})
	if len(got) != 1 || got[0].Status != "Recusada" {
		t.Fatalf("unexpected records: %+v", got)
	}

	got[0].Negotiator = "changed"
	if in[1].Negotiator != "Ana" {
		t.Fatalf("ApplyFilter must not alias its input")
	}
}
