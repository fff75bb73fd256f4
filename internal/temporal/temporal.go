// Package temporal combines stored accounting periods into synthetic row sets
// for the conversion engine: year-to-date roll-ups and month-over-month
// differences. Both functions are pure; they copy, never mutate, their inputs.
package temporal

import (
	"math"
	"sort"
	"strings"

	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// Epsilon is the threshold below which a closed-out account's residual fields
// count as zero, so differencing does not emit all-zero noise rows.
const Epsilon = 0.005

// RollUp aggregates the given stored periods plus the current in-memory rows
// into one synthetic row per code: the six numeric fields are summed across
// every contributing row sharing a code, and the most recently seen non-empty
// name wins. Stored periods are processed in (year, month) order; the current
// rows come last. The returned overrides are keyed by code, unioned across
// periods with later periods (and finally the current set) taking precedence.
func RollUp(periods []tb.StoredPeriod, current []tb.Row, currentOverrides map[string]tb.Override) ([]tb.Row, map[string]tb.Override) {
	sorted := make([]tb.StoredPeriod, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Month < sorted[j].Month
	})

	totals := make(map[string]*tb.Row)
	order := make([]string, 0)
	add := func(rows []tb.Row) {
		for _, r := range rows {
			code := strings.TrimSpace(r.Code)
			if code == "" {
				continue
			}
			acc, ok := totals[code]
			if !ok {
				acc = &tb.Row{ID: "ytd-" + code, Code: code}
				totals[code] = acc
				order = append(order, code)
			}
			if name := strings.TrimSpace(r.Name); name != "" {
				acc.Name = name
			}
			acc.OpeningDebit += r.OpeningDebit
			acc.OpeningCredit += r.OpeningCredit
			acc.PeriodDebit += r.PeriodDebit
			acc.PeriodCredit += r.PeriodCredit
			acc.ClosingDebit += r.ClosingDebit
			acc.ClosingCredit += r.ClosingCredit
		}
	}

	overrides := make(map[string]tb.Override)
	for _, p := range sorted {
		add(p.Rows)
		mergeOverridesByCode(overrides, p.Rows, p.Overrides)
	}
	add(current)
	mergeOverridesByCode(overrides, current, currentOverrides)

	out := make([]tb.Row, 0, len(order))
	for _, code := range order {
		out = append(out, *totals[code])
	}
	return out, overrides
}

// Difference computes the per-code delta between the current period and the
// immediately preceding one. Codes present in the current period always yield
// a row (previous fields default to zero). Codes present only in the previous
// period yield a negated synthetic row that closes the account out, unless
// every field is within Epsilon of zero.
func Difference(current, previous []tb.Row) []tb.Row {
	currentByCode, currentOrder := sumByCode(current)
	previousByCode, previousOrder := sumByCode(previous)

	out := make([]tb.Row, 0, len(currentOrder))
	for _, code := range currentOrder {
		cur := currentByCode[code]
		row := tb.Row{ID: "delta-" + code, Code: code, Name: cur.Name}
		row.OpeningDebit = cur.OpeningDebit
		row.OpeningCredit = cur.OpeningCredit
		row.PeriodDebit = cur.PeriodDebit
		row.PeriodCredit = cur.PeriodCredit
		row.ClosingDebit = cur.ClosingDebit
		row.ClosingCredit = cur.ClosingCredit
		if prev, ok := previousByCode[code]; ok {
			row.OpeningDebit -= prev.OpeningDebit
			row.OpeningCredit -= prev.OpeningCredit
			row.PeriodDebit -= prev.PeriodDebit
			row.PeriodCredit -= prev.PeriodCredit
			row.ClosingDebit -= prev.ClosingDebit
			row.ClosingCredit -= prev.ClosingCredit
		}
		out = append(out, row)
	}
	for _, code := range previousOrder {
		if _, ok := currentByCode[code]; ok {
			continue
		}
		prev := previousByCode[code]
		row := tb.Row{
			ID:            "delta-" + code,
			Code:          code,
			Name:          prev.Name,
			OpeningDebit:  -prev.OpeningDebit,
			OpeningCredit: -prev.OpeningCredit,
			PeriodDebit:   -prev.PeriodDebit,
			PeriodCredit:  -prev.PeriodCredit,
			ClosingDebit:  -prev.ClosingDebit,
			ClosingCredit: -prev.ClosingCredit,
		}
		if negligible(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// OverridesByCode re-keys a rowId-keyed override map by the code of the row
// that carries the id, so overrides survive the switch to synthetic rows.
// Keys that match no row id pass through unchanged (they are already codes).
func OverridesByCode(rows []tb.Row, overrides map[string]tb.Override) map[string]tb.Override {
	out := make(map[string]tb.Override, len(overrides))
	mergeOverridesByCode(out, rows, overrides)
	return out
}

func mergeOverridesByCode(dst map[string]tb.Override, rows []tb.Row, overrides map[string]tb.Override) {
	if len(overrides) == 0 {
		return
	}
	codeByID := make(map[string]string, len(rows))
	for _, r := range rows {
		codeByID[r.ID] = r.Code
	}
	for key, o := range overrides {
		if o.IsZero() {
			continue
		}
		code, ok := codeByID[key]
		if !ok || code == "" {
			code = key
		}
		dst[code] = o
	}
}

func sumByCode(rows []tb.Row) (map[string]*tb.Row, []string) {
	byCode := make(map[string]*tb.Row)
	order := make([]string, 0, len(rows))
	for _, r := range rows {
		code := strings.TrimSpace(r.Code)
		if code == "" {
			continue
		}
		acc, ok := byCode[code]
		if !ok {
			acc = &tb.Row{Code: code}
			byCode[code] = acc
			order = append(order, code)
		}
		if name := strings.TrimSpace(r.Name); name != "" {
			acc.Name = name
		}
		acc.OpeningDebit += r.OpeningDebit
		acc.OpeningCredit += r.OpeningCredit
		acc.PeriodDebit += r.PeriodDebit
		acc.PeriodCredit += r.PeriodCredit
		acc.ClosingDebit += r.ClosingDebit
		acc.ClosingCredit += r.ClosingCredit
	}
	return byCode, order
}

func negligible(r tb.Row) bool {
	for _, v := range []float64{
		r.OpeningDebit, r.OpeningCredit,
		r.PeriodDebit, r.PeriodCredit,
		r.ClosingDebit, r.ClosingCredit,
	} {
		if math.Abs(v) > Epsilon {
			return false
		}
	}
	return true
}
