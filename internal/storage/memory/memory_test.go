package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/balanza-dev/balanza/internal/errs"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

func testPeriod(year, month int) tb.StoredPeriod {
	return tb.StoredPeriod{
		Year:         year,
		Month:        month,
		Filename:     "balanza.xlsx",
		ExchangeRate: 0.046,
		UploadedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		Rows: []tb.Row{
			{ID: "row-1", Code: "101", Name: "Caja", ClosingDebit: 100},
		},
		Overrides: map[string]tb.Override{
			"row-1": {TargetCode: "570"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.SavePeriod(ctx, testPeriod(2025, 3)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadPeriod(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Year != 2025 || got.Month != 3 || got.Filename != "balanza.xlsx" {
		t.Fatalf("unexpected period: %+v", got)
	}
	if len(got.Rows) != 1 || got.Rows[0].Code != "101" {
		t.Fatalf("rows not preserved: %+v", got.Rows)
	}
	if got.Overrides["row-1"].TargetCode != "570" {
		t.Fatalf("overrides not preserved: %+v", got.Overrides)
	}
}

func TestSaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.SavePeriod(ctx, testPeriod(2025, 3)); err != nil {
		t.Fatalf("save: %v", err)
	}
	replacement := testPeriod(2025, 3)
	replacement.Rows = []tb.Row{{ID: "row-9", Code: "401", ClosingCredit: 50}}
	replacement.Overrides = nil
	if err := s.SavePeriod(ctx, replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.LoadPeriod(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0].Code != "401" {
		t.Fatalf("rows should be replaced wholesale: %+v", got.Rows)
	}
	if len(got.Overrides) != 0 {
		t.Fatalf("overrides should be replaced with the rows: %+v", got.Overrides)
	}
}

func TestSaveRejectsInvalidKeys(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, p := range []tb.StoredPeriod{
		{Year: 0, Month: 1},
		{Year: 2025, Month: 0},
		{Year: 2025, Month: 13},
	} {
		if err := s.SavePeriod(ctx, p); !errors.Is(err, errs.ErrInvalid) {
			t.Fatalf("expected ErrInvalid for %d-%d, got %v", p.Year, p.Month, err)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	s := New()
	if _, err := s.LoadPeriod(context.Background(), 2025, 1); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPeriods_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, ym := range [][2]int{{2024, 12}, {2025, 2}, {2025, 1}} {
		if err := s.SavePeriod(ctx, testPeriod(ym[0], ym[1])); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	got, err := s.ListPeriods(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := [][2]int{{2025, 2}, {2025, 1}, {2024, 12}}
	if len(got) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(got))
	}
	for i, ym := range want {
		if got[i].Year != ym[0] || got[i].Month != ym[1] {
			t.Fatalf("position %d: expected %v, got %d-%d", i, ym, got[i].Year, got[i].Month)
		}
		if got[i].RowCount != 1 {
			t.Fatalf("row count not reported: %+v", got[i])
		}
	}
}

func TestListUpTo_SameYearAscending(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, ym := range [][2]int{{2024, 12}, {2025, 1}, {2025, 2}, {2025, 5}} {
		if err := s.SavePeriod(ctx, testPeriod(ym[0], ym[1])); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	got, err := s.ListUpTo(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Month != 1 || got[1].Month != 2 {
		t.Fatalf("expected months 1,2 of 2025, got %+v", got)
	}
}

func TestDeletePeriod(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.SavePeriod(ctx, testPeriod(2025, 3)); err != nil {
		t.Fatalf("save: %v", err)
	}
	deleted, err := s.DeletePeriod(ctx, 2025, 3)
	if err != nil || !deleted {
		t.Fatalf("expected delete to report true, got %v %v", deleted, err)
	}
	deleted, err = s.DeletePeriod(ctx, 2025, 3)
	if err != nil || deleted {
		t.Fatalf("second delete should report false, got %v %v", deleted, err)
	}
	if _, err := s.LoadPeriod(ctx, 2025, 3); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s := New()
	original := testPeriod(2025, 3)
	if err := s.SavePeriod(ctx, original); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's copy after save must not leak into the store.
	original.Rows[0].ClosingDebit = 999
	original.Overrides["row-1"] = tb.Override{TargetCode: "999"}

	got, err := s.LoadPeriod(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Rows[0].ClosingDebit != 100 || got.Overrides["row-1"].TargetCode != "570" {
		t.Fatalf("stored snapshot was mutated: %+v", got)
	}

	// Mutating a loaded copy must not affect later loads.
	got.Rows[0].ClosingDebit = 123
	again, _ := s.LoadPeriod(ctx, 2025, 3)
	if again.Rows[0].ClosingDebit != 100 {
		t.Fatalf("loaded copy aliases the stored snapshot")
	}
}
