package httpapi

import (
	"context"

	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// PeriodStore abstracts the period snapshot store consumed by the API. The
// engine treats each operation as atomic per period: a snapshot's rows and
// overrides are replaced together or not at all.
type PeriodStore interface {
	SavePeriod(ctx context.Context, p tb.StoredPeriod) error
	// LoadPeriod returns errs.ErrNotFound when the period is absent.
	LoadPeriod(ctx context.Context, year, month int) (tb.StoredPeriod, error)
	ListPeriods(ctx context.Context) ([]tb.PeriodSummary, error)
	// ListUpTo returns the year's stored periods with month <= the cutoff,
	// ascending.
	ListUpTo(ctx context.Context, year, month int) ([]tb.StoredPeriod, error)
	DeletePeriod(ctx context.Context, year, month int) (bool, error)
}
