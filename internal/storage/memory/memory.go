package memory

// Package memory provides a simple in-memory period store used for
// development and tests. It keeps the same snapshot semantics as the
// Postgres store: a period's rows and overrides are replaced together.
import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/balanza-dev/balanza/internal/errs"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// Store keeps stored periods keyed by "YYYY-MM". Guarded by an RWMutex for
// concurrent reads/writes; loads return deep copies so callers can mutate
// their working set without touching the stored snapshot.
type Store struct {
	mu      sync.RWMutex
	periods map[string]tb.StoredPeriod
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{periods: make(map[string]tb.StoredPeriod)}
}

// Reset clears all stored periods (test helper).
func (s *Store) Reset() {
	s.mu.Lock()
	s.periods = make(map[string]tb.StoredPeriod)
	s.mu.Unlock()
}

// SavePeriod replaces the snapshot for the period's year-month key.
func (s *Store) SavePeriod(_ context.Context, p tb.StoredPeriod) error {
	if p.Year <= 0 || p.Month < 1 || p.Month > 12 {
		return errs.ErrInvalid
	}
	if p.UploadedAt.IsZero() {
		p.UploadedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.periods[tb.PeriodKey(p.Year, p.Month)] = clonePeriod(p)
	s.mu.Unlock()
	return nil
}

// LoadPeriod returns the snapshot for year-month or errs.ErrNotFound.
func (s *Store) LoadPeriod(_ context.Context, year, month int) (tb.StoredPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.periods[tb.PeriodKey(year, month)]
	if !ok {
		return tb.StoredPeriod{}, errs.ErrNotFound
	}
	return clonePeriod(p), nil
}

// ListPeriods returns summaries of every stored period, newest first.
func (s *Store) ListPeriods(_ context.Context) ([]tb.PeriodSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tb.PeriodSummary, 0, len(s.periods))
	for _, p := range s.periods {
		out = append(out, tb.PeriodSummary{
			Year:         p.Year,
			Month:        p.Month,
			Filename:     p.Filename,
			ExchangeRate: p.ExchangeRate,
			UploadedAt:   p.UploadedAt,
			RowCount:     len(p.Rows),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

// ListUpTo returns the stored periods of the given year with month <= the
// cutoff, in ascending month order.
func (s *Store) ListUpTo(_ context.Context, year, month int) ([]tb.StoredPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tb.StoredPeriod, 0)
	for _, p := range s.periods {
		if p.Year == year && p.Month <= month {
			out = append(out, clonePeriod(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// DeletePeriod removes a snapshot and reports whether it existed.
func (s *Store) DeletePeriod(_ context.Context, year, month int) (bool, error) {
	key := tb.PeriodKey(year, month)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.periods[key]; !ok {
		return false, nil
	}
	delete(s.periods, key)
	return true, nil
}

func clonePeriod(p tb.StoredPeriod) tb.StoredPeriod {
	out := p
	out.Rows = make([]tb.Row, len(p.Rows))
	copy(out.Rows, p.Rows)
	out.Overrides = make(map[string]tb.Override, len(p.Overrides))
	for k, v := range p.Overrides {
		out.Overrides[k] = v
	}
	return out
}
