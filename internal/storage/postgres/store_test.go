package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/balanza-dev/balanza/internal/errs"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

func getTestDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres store tests")
	}
	return dsn
}

func mustOpen(t *testing.T, dsn string) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func truncateAll(t *testing.T, s *Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = s.pool.Exec(ctx, `truncate table period_overrides, period_rows, periods cascade`)
}

func samplePeriod(year, month int) tb.StoredPeriod {
	return tb.StoredPeriod{
		Year:         year,
		Month:        month,
		Filename:     "balanza.xlsx",
		ExchangeRate: 0.046,
		UploadedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		Rows: []tb.Row{
			{ID: "row-1", Code: "101", Name: "Caja", ClosingDebit: 100},
			{ID: "row-2", Code: "301-001", Name: "Capital", ClosingCredit: 100},
		},
		Overrides: map[string]tb.Override{
			"row-1": {TargetCode: "570", Group: tb.GroupAssetCurrent},
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dsn := getTestDSN(t)
	s := mustOpen(t, dsn)
	defer s.Close()
	truncateAll(t, s)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.SavePeriod(ctx, samplePeriod(2025, 3)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadPeriod(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Year != 2025 || got.Month != 3 || got.ExchangeRate != 0.046 {
		t.Fatalf("unexpected header: %+v", got)
	}
	if len(got.Rows) != 2 || got.Rows[0].ID != "row-1" || got.Rows[1].Code != "301-001" {
		t.Fatalf("rows not preserved in order: %+v", got.Rows)
	}
	o := got.Overrides["row-1"]
	if o.TargetCode != "570" || o.Group != tb.GroupAssetCurrent {
		t.Fatalf("override not preserved: %+v", o)
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	dsn := getTestDSN(t)
	s := mustOpen(t, dsn)
	defer s.Close()
	truncateAll(t, s)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.SavePeriod(ctx, samplePeriod(2025, 3)); err != nil {
		t.Fatalf("save: %v", err)
	}
	replacement := samplePeriod(2025, 3)
	replacement.Rows = replacement.Rows[:1]
	replacement.Overrides = nil
	if err := s.SavePeriod(ctx, replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.LoadPeriod(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Rows) != 1 || len(got.Overrides) != 0 {
		t.Fatalf("snapshot should be replaced whole: %+v", got)
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	dsn := getTestDSN(t)
	s := mustOpen(t, dsn)
	defer s.Close()
	truncateAll(t, s)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, ym := range [][2]int{{2024, 12}, {2025, 1}, {2025, 2}} {
		if err := s.SavePeriod(ctx, samplePeriod(ym[0], ym[1])); err != nil {
			t.Fatalf("save %v: %v", ym, err)
		}
	}

	summaries, err := s.ListPeriods(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 3 || summaries[0].Year != 2025 || summaries[0].Month != 2 {
		t.Fatalf("expected newest first, got %+v", summaries)
	}
	if summaries[0].RowCount != 2 {
		t.Fatalf("row count not populated: %+v", summaries[0])
	}

	upTo, err := s.ListUpTo(ctx, 2025, 1)
	if err != nil {
		t.Fatalf("listUpTo: %v", err)
	}
	if len(upTo) != 1 || upTo[0].Month != 1 || len(upTo[0].Rows) != 2 {
		t.Fatalf("expected january with rows, got %+v", upTo)
	}

	deleted, err := s.DeletePeriod(ctx, 2025, 1)
	if err != nil || !deleted {
		t.Fatalf("delete: %v %v", deleted, err)
	}
	if _, err := s.LoadPeriod(ctx, 2025, 1); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	deleted, err = s.DeletePeriod(ctx, 2025, 1)
	if err != nil || deleted {
		t.Fatalf("second delete should report false: %v %v", deleted, err)
	}
}
