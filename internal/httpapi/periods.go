package httpapi

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/balanza-dev/balanza/internal/convert"
	"github.com/balanza-dev/balanza/internal/errs"
	"github.com/balanza-dev/balanza/internal/normalize"
	"github.com/balanza-dev/balanza/internal/temporal"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// saveTolerance is the largest absolute final trial-balance difference a
// snapshot may carry and still be persisted.
const saveTolerance = 0.01

func (s *Server) listPeriods(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListPeriods(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if summaries == nil {
		summaries = []tb.PeriodSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) savePeriod(w http.ResponseWriter, r *http.Request) {
	var req savePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Year < 1 || req.Month < 1 || req.Month > 12 {
		writeError(w, http.StatusBadRequest, "year and month are required")
		return
	}
	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "rows must be a non-empty array")
		return
	}

	rows, _ := normalize.Records(req.Rows)
	// Client-supplied row ids may collide; stored snapshots need ids unique
	// within the period because overrides key on them.
	seen := make(map[string]bool, len(rows))
	for i := range rows {
		if rows[i].ID == "" || seen[rows[i].ID] {
			rows[i].ID = "row-" + uuid.NewString()[:8]
		}
		seen[rows[i].ID] = true
	}

	rate := req.ExchangeRate
	if rate == 0 {
		rate = s.defaultRate
	}

	// A snapshot is only worth storing when it would reconvert cleanly:
	// every analyzed row mapped and the converted balance within tolerance.
	result := convert.Rows(rows, convert.Options{ExchangeRate: rate, Overrides: req.ManualOverrides})
	switch {
	case result.Metadata.AnalyzedRowCount == 0:
		writeErr(w, fmt.Errorf("%w: no analyzable rows in snapshot", errs.ErrUnprocessable))
		return
	case result.Metadata.UnmappedCount > 0:
		writeErr(w, fmt.Errorf("%w: %d unmapped rows, resolve them before saving", errs.ErrUnprocessable, result.Metadata.UnmappedCount))
		return
	case math.Abs(result.Validations.TrialBalanceFinalDifference) > saveTolerance:
		writeErr(w, fmt.Errorf("%w: trial balance out of balance by %.2f", errs.ErrUnprocessable, result.Validations.TrialBalanceFinalDifference))
		return
	}

	period := tb.StoredPeriod{
		Year:         req.Year,
		Month:        req.Month,
		Filename:     req.Filename,
		ExchangeRate: rate,
		UploadedAt:   time.Now().UTC(),
		Rows:         rows,
		Overrides:    req.ManualOverrides,
	}
	if err := s.store.SavePeriod(r.Context(), period); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tb.PeriodSummary{
		Year:         period.Year,
		Month:        period.Month,
		Filename:     period.Filename,
		ExchangeRate: period.ExchangeRate,
		UploadedAt:   period.UploadedAt,
		RowCount:     len(period.Rows),
	})
}

func (s *Server) getPeriod(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}
	period, err := s.store.LoadPeriod(r.Context(), year, month)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, period)
}

func (s *Server) deletePeriod(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}
	deleted, err := s.store.DeletePeriod(r.Context(), year, month)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, fmt.Sprintf("period %s not found", tb.PeriodKey(year, month)))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getYearToDate converts the cumulative balance from January through the
// requested month. Stored snapshots for earlier months of the same year are
// rolled up with the requested month's own rows; overrides are unioned with
// the later month winning on conflicts.
func (s *Server) getYearToDate(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}
	target, err := s.store.LoadPeriod(r.Context(), year, month)
	if err != nil {
		writeErr(w, err)
		return
	}
	earlier, err := s.store.ListUpTo(r.Context(), year, month-1)
	if err != nil {
		writeErr(w, err)
		return
	}

	rows, overrides := temporal.RollUp(earlier, target.Rows, target.Overrides)
	result := convert.Rows(rows, convert.Options{ExchangeRate: target.ExchangeRate, Overrides: overrides})
	writeJSON(w, http.StatusOK, temporalResponse{
		Year: year, Month: month, View: "ytd",
		ConversionResult: result,
	})
}

// getMonthDelta converts the month-over-month movement: the requested
// month's balance minus the latest earlier snapshot in the same year.
func (s *Server) getMonthDelta(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}
	target, err := s.store.LoadPeriod(r.Context(), year, month)
	if err != nil {
		writeErr(w, err)
		return
	}
	earlier, err := s.store.ListUpTo(r.Context(), year, month-1)
	if err != nil {
		writeErr(w, err)
		return
	}
	if len(earlier) == 0 {
		writeErr(w, fmt.Errorf("%w: no earlier period in %d to diff against", errs.ErrNotFound, year))
		return
	}
	previous := earlier[len(earlier)-1]

	rows := temporal.Difference(target.Rows, previous.Rows)
	overrides := temporal.OverridesByCode(target.Rows, target.Overrides)
	result := convert.Rows(rows, convert.Options{ExchangeRate: target.ExchangeRate, Overrides: overrides})
	writeJSON(w, http.StatusOK, temporalResponse{
		Year: year, Month: month, View: "delta",
		ConversionResult: result,
	})
}

func periodParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "year must be a positive integer")
		return 0, 0, false
	}
	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return 0, 0, false
	}
	return year, month, true
}
