// Package convert implements the conversion engine: per-row classification
// and currency conversion, per-target-code aggregation, statement building
// and double-entry validations. Conversion is a pure function of its inputs;
// it never mutates rows or overrides and never fails on bad data. Unmapped
// accounts and unbalanced ledgers come back as findings inside the result.
package convert

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/balanza-dev/balanza/internal/pgcmap"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// DefaultExchangeRate is the MXN to EUR factor used when the caller supplies
// no usable rate.
const DefaultExchangeRate = 0.046

// creditNormalGroups display as the negation of the net balance so that
// liabilities, equity and income show positive.
var creditNormalGroups = map[tb.Group]bool{
	tb.GroupLiabilityCurrent:    true,
	tb.GroupLiabilityNonCurrent: true,
	tb.GroupEquity:              true,
	tb.GroupRevenue:             true,
	tb.GroupRevenueFinancial:    true,
}

// BalanceGroupOrder is the display order of balance-sheet groups.
var BalanceGroupOrder = []tb.Group{
	tb.GroupAssetNonCurrent,
	tb.GroupAssetCurrent,
	tb.GroupEquity,
	tb.GroupLiabilityNonCurrent,
	tb.GroupLiabilityCurrent,
}

// PnLSectionOrder is the display order of P&L sections.
var PnLSectionOrder = []tb.Subgroup{
	tb.SubgroupNetSales,
	tb.SubgroupOtherOperatingIncome,
	tb.SubgroupPersonnelExpense,
	tb.SubgroupExternalServices,
	tb.SubgroupTaxesOther,
	tb.SubgroupDepreciation,
	tb.SubgroupExceptionalExpense,
	tb.SubgroupFinancialResult,
	tb.SubgroupOtherResults,
}

// Options carries the per-call conversion inputs besides the rows.
type Options struct {
	// ExchangeRate converts primary-currency amounts into the secondary
	// currency. Non-finite or non-positive values fall back to the default.
	ExchangeRate float64
	// Overrides maps row id (preferred) or raw code to a manual classification.
	Overrides map[string]tb.Override
}

// Rows converts a normalized row set into a full conversion result.
func Rows(rows []tb.Row, opts Options) tb.ConversionResult {
	rate := opts.ExchangeRate
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		rate = DefaultExchangeRate
	}

	converted := make([]tb.ConvertedRow, 0, len(rows))
	for _, row := range rows {
		cls, manual := resolve(row, opts.Overrides)
		net := row.ClosingDebit - row.ClosingCredit
		display := net
		if creditNormalGroups[cls.Group] {
			display = -net
		}
		summary := isSummaryLine(row, rows)
		converted = append(converted, tb.ConvertedRow{
			Row:                   row,
			Classification:        cls,
			NetBalance:            net,
			NetBalanceSecondary:   net * rate,
			DisplayPrimary:        display,
			DisplaySecondary:      display * rate,
			ManualOverrideApplied: manual,
			SummaryLine:           summary,
			Excluded:              row.ExcludeFromAnalysis || summary,
		})
	}

	analyzed := make([]tb.ConvertedRow, 0, len(converted))
	for _, r := range converted {
		if !r.Excluded {
			analyzed = append(analyzed, r)
		}
	}

	aggregates := aggregate(analyzed)
	balance := buildBalanceSheet(aggregates)
	pnl := buildPnL(aggregates)

	var unmapped []tb.ConvertedRow
	var initialDebit, initialCredit, finalDebit, finalCredit float64
	manualCount := 0
	for _, r := range analyzed {
		if r.TargetCode == pgcmap.CodeUnmapped {
			unmapped = append(unmapped, r)
		}
		initialDebit += r.OpeningDebit
		initialCredit += r.OpeningCredit
		finalDebit += r.ClosingDebit
		finalCredit += r.ClosingCredit
	}
	summaryCount := 0
	for _, r := range converted {
		if r.ManualOverrideApplied {
			manualCount++
		}
		if r.SummaryLine {
			summaryCount++
		}
	}
	coverage := 0.0
	if len(analyzed) > 0 {
		coverage = float64(len(analyzed)-len(unmapped)) / float64(len(analyzed)) * 100
	}

	return tb.ConversionResult{
		Metadata: tb.Metadata{
			ExchangeRate:         rate,
			RowCount:             len(converted),
			AnalyzedRowCount:     len(analyzed),
			SummaryExcludedCount: summaryCount,
			UnmappedCount:        len(unmapped),
			ManualOverrideCount:  manualCount,
			CoveragePct:          coverage,
			GeneratedAt:          time.Now().UTC(),
		},
		Rows:         converted,
		Aggregates:   aggregates,
		BalanceSheet: balance,
		PnL:          pnl,
		Validations: tb.Validations{
			TrialBalanceInitialDifference: initialDebit - initialCredit,
			TrialBalanceFinalDifference:   finalDebit - finalCredit,
			UnmappedRows:                  unmapped,
		},
	}
}

// resolve applies override precedence (row id first, raw code second) before
// the automatic prefix resolution. A non-empty override replaces the
// automatic result outright; its blank fields become sentinels.
func resolve(row tb.Row, overrides map[string]tb.Override) (tb.Classification, bool) {
	if o, ok := overrides[row.ID]; ok {
		if cls, ok := pgcmap.FromOverride(o); ok {
			return cls, true
		}
	}
	if o, ok := overrides[row.Code]; ok {
		if cls, ok := pgcmap.FromOverride(o); ok {
			return cls, true
		}
	}
	if cls, ok := pgcmap.Find(row.Code); ok {
		return cls, false
	}
	return pgcmap.Unclassified(), false
}

// isSummaryLine detects source roll-up lines: codes with trailing all-zero
// segments that have sibling detail rows under the same prefix. Codes under
// "000-000-" are always summaries.
func isSummaryLine(row tb.Row, all []tb.Row) bool {
	code := strings.TrimSpace(row.Code)
	if code == "" {
		return false
	}
	if strings.HasPrefix(code, "000-000-") {
		return true
	}
	segments := strings.Split(code, "-")
	trailingZeros := 0
	for i := len(segments) - 1; i >= 0; i-- {
		if !isZeroSegment(segments[i]) {
			break
		}
		trailingZeros++
	}
	if trailingZeros == 0 {
		return false
	}
	prefixLen := len(segments) - trailingZeros
	if prefixLen <= 0 {
		return true
	}
	prefix := strings.Join(segments[:prefixLen], "-") + "-"
	for _, other := range all {
		if other.Code != code && strings.HasPrefix(other.Code, prefix) {
			return true
		}
	}
	return false
}

func isZeroSegment(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '0' {
			return false
		}
	}
	return true
}

// aggregate sums display amounts per resolved target code. Totals are plain
// sums, so the outcome is independent of input order up to slice ordering.
func aggregate(rows []tb.ConvertedRow) []tb.AggregatedAccount {
	byCode := make(map[string]*tb.AggregatedAccount)
	for _, r := range rows {
		agg, ok := byCode[r.TargetCode]
		if !ok {
			agg = &tb.AggregatedAccount{
				TargetCode: r.TargetCode,
				TargetName: r.TargetName,
				Group:      r.Group,
				Subgroup:   r.Subgroup,
			}
			byCode[r.TargetCode] = agg
		}
		agg.TotalPrimary += r.DisplayPrimary
		agg.TotalSecondary += r.DisplaySecondary
		agg.Rows = append(agg.Rows, r)
	}
	out := make([]tb.AggregatedAccount, 0, len(byCode))
	for _, agg := range byCode {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return codeLess(out[i].TargetCode, out[j].TargetCode)
	})
	return out
}

// codeLess orders account codes numerically when both carry a parseable
// numeric prefix, so "430" sorts before "4304" before "570" as in a chart of
// accounts, not lexically. Numeric codes sort before non-numeric ones.
func codeLess(a, b string) bool {
	an, aok := numericPrefix(a)
	bn, bok := numericPrefix(b)
	switch {
	case aok && bok:
		if an != bn {
			return an < bn
		}
		return a < b
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

func numericPrefix(s string) (int64, bool) {
	var n int64
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if digits < 18 {
			n = n*10 + int64(r-'0')
			digits++
		}
	}
	return n, digits > 0
}

func buildBalanceSheet(aggregates []tb.AggregatedAccount) tb.BalanceSheet {
	groups := make(map[tb.Group]*tb.StatementSection, len(BalanceGroupOrder))
	for _, g := range BalanceGroupOrder {
		groups[g] = &tb.StatementSection{Accounts: []tb.AggregatedAccount{}}
	}
	for _, agg := range aggregates {
		section, ok := groups[agg.Group]
		if !ok {
			continue
		}
		section.Accounts = append(section.Accounts, agg)
		section.TotalPrimary += agg.TotalPrimary
		section.TotalSecondary += agg.TotalSecondary
	}

	assetsP := groups[tb.GroupAssetNonCurrent].TotalPrimary + groups[tb.GroupAssetCurrent].TotalPrimary
	assetsS := groups[tb.GroupAssetNonCurrent].TotalSecondary + groups[tb.GroupAssetCurrent].TotalSecondary
	equityLiabP := groups[tb.GroupEquity].TotalPrimary +
		groups[tb.GroupLiabilityNonCurrent].TotalPrimary +
		groups[tb.GroupLiabilityCurrent].TotalPrimary
	equityLiabS := groups[tb.GroupEquity].TotalSecondary +
		groups[tb.GroupLiabilityNonCurrent].TotalSecondary +
		groups[tb.GroupLiabilityCurrent].TotalSecondary

	return tb.BalanceSheet{
		Groups:                          groups,
		TotalAssetsPrimary:              assetsP,
		TotalAssetsSecondary:            assetsS,
		TotalEquityLiabilitiesPrimary:   equityLiabP,
		TotalEquityLiabilitiesSecondary: equityLiabS,
		DifferencePrimary:               assetsP - equityLiabP,
		DifferenceSecondary:             assetsS - equityLiabS,
	}
}

func buildPnL(aggregates []tb.AggregatedAccount) tb.ProfitAndLoss {
	sections := make(map[tb.Subgroup]*tb.StatementSection, len(PnLSectionOrder))
	for _, s := range PnLSectionOrder {
		sections[s] = &tb.StatementSection{Accounts: []tb.AggregatedAccount{}}
	}
	for _, agg := range aggregates {
		section, ok := sections[agg.Subgroup]
		if !ok {
			continue
		}
		section.Accounts = append(section.Accounts, agg)
		section.TotalPrimary += agg.TotalPrimary
		section.TotalSecondary += agg.TotalSecondary
	}

	revenueP := sections[tb.SubgroupNetSales].TotalPrimary + sections[tb.SubgroupOtherOperatingIncome].TotalPrimary
	revenueS := sections[tb.SubgroupNetSales].TotalSecondary + sections[tb.SubgroupOtherOperatingIncome].TotalSecondary
	expenseP := sections[tb.SubgroupPersonnelExpense].TotalPrimary +
		sections[tb.SubgroupExternalServices].TotalPrimary +
		sections[tb.SubgroupTaxesOther].TotalPrimary +
		sections[tb.SubgroupDepreciation].TotalPrimary +
		sections[tb.SubgroupExceptionalExpense].TotalPrimary
	expenseS := sections[tb.SubgroupPersonnelExpense].TotalSecondary +
		sections[tb.SubgroupExternalServices].TotalSecondary +
		sections[tb.SubgroupTaxesOther].TotalSecondary +
		sections[tb.SubgroupDepreciation].TotalSecondary +
		sections[tb.SubgroupExceptionalExpense].TotalSecondary
	financialP := sections[tb.SubgroupFinancialResult].TotalPrimary
	financialS := sections[tb.SubgroupFinancialResult].TotalSecondary
	otherP := sections[tb.SubgroupOtherResults].TotalPrimary
	otherS := sections[tb.SubgroupOtherResults].TotalSecondary

	return tb.ProfitAndLoss{
		Sections:                 sections,
		RevenuePrimary:           revenueP,
		RevenueSecondary:         revenueS,
		ExpensePrimary:           expenseP,
		ExpenseSecondary:         expenseS,
		OperatingResultPrimary:   revenueP - expenseP,
		OperatingResultSecondary: revenueS - expenseS,
		FinancialResultPrimary:   financialP,
		FinancialResultSecondary: financialS,
		OtherResultsPrimary:      otherP,
		OtherResultsSecondary:    otherS,
		PreTaxResultPrimary:      revenueP - expenseP + financialP + otherP,
		PreTaxResultSecondary:    revenueS - expenseS + financialS + otherS,
	}
}
