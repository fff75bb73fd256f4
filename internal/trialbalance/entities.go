package trialbalance

import (
	"fmt"
	"time"
)

// Group is the balance-sheet / P&L classification of a converted account.
type Group string

const (
	// GroupAssetNonCurrent holds fixed assets, accumulated depreciation and
	// long-term financial investments.
	GroupAssetNonCurrent Group = "asset_non_current"
	// GroupAssetCurrent holds cash, receivables and other short-term assets.
	GroupAssetCurrent Group = "asset_current"
	// GroupEquity captures own funds.
	GroupEquity Group = "equity"
	// GroupLiabilityNonCurrent holds long-term debt.
	GroupLiabilityNonCurrent Group = "liability_non_current"
	// GroupLiabilityCurrent holds payables and other short-term obligations.
	GroupLiabilityCurrent Group = "liability_current"
	// GroupRevenue represents operating income.
	GroupRevenue Group = "revenue"
	// GroupRevenueFinancial represents financial income (e.g. exchange gains).
	GroupRevenueFinancial Group = "revenue_financial"
	// GroupExpense represents operating expense.
	GroupExpense Group = "expense"
	// GroupExpenseFinancial represents financial expense (e.g. exchange losses).
	GroupExpenseFinancial Group = "expense_financial"
	// GroupUnclassified is the sentinel for rows without a resolvable group.
	GroupUnclassified Group = "unclassified"
)

// Subgroup is the finer classification bucket beneath a Group. Balance-sheet
// subgroups are descriptive; P&L subgroups drive the statement sections.
type Subgroup string

const (
	SubgroupCashEquivalents   Subgroup = "cash_equivalents"
	SubgroupTradeReceivables  Subgroup = "trade_receivables"
	SubgroupOtherReceivables  Subgroup = "other_receivables"
	SubgroupAccruals          Subgroup = "accruals"
	SubgroupPublicAdmin       Subgroup = "public_administrations"
	SubgroupTangibleAssets    Subgroup = "tangible_fixed_assets"
	SubgroupAccumDepreciation Subgroup = "accumulated_depreciation"
	SubgroupLTInvestments     Subgroup = "lt_financial_investments"
	SubgroupTradePayables     Subgroup = "trade_payables"
	SubgroupOtherPayables     Subgroup = "other_payables"
	SubgroupGroupCompaniesST  Subgroup = "group_companies_st"
	SubgroupOtherLiabilities  Subgroup = "other_liabilities"
	SubgroupLTDebts           Subgroup = "lt_debts"
	SubgroupOwnFunds          Subgroup = "own_funds"

	// P&L sections.
	SubgroupNetSales             Subgroup = "net_sales"
	SubgroupOtherOperatingIncome Subgroup = "other_operating_income"
	SubgroupPersonnelExpense     Subgroup = "personnel_expense"
	SubgroupExternalServices     Subgroup = "external_services"
	SubgroupTaxesOther           Subgroup = "taxes_other"
	SubgroupDepreciation         Subgroup = "depreciation"
	SubgroupExceptionalExpense   Subgroup = "exceptional_expense"
	SubgroupFinancialResult      Subgroup = "financial_result"
	SubgroupOtherResults         Subgroup = "other_results"

	// SubgroupUnclassified is the sentinel for rows without a resolvable subgroup.
	SubgroupUnclassified Subgroup = "unclassified"
)

// Row is one canonical trial-balance line. Identity is ID; Code may repeat
// across rows within a period (aggregation by code happens downstream).
type Row struct {
	ID   string `json:"rowId"`
	Code string `json:"code"`
	Name string `json:"name"`
	// Opening balances, period movements and closing balances, debit/credit.
	OpeningDebit  float64 `json:"openingDebit"`
	OpeningCredit float64 `json:"openingCredit"`
	PeriodDebit   float64 `json:"periodDebit"`
	PeriodCredit  float64 `json:"periodCredit"`
	ClosingDebit  float64 `json:"closingDebit"`
	ClosingCredit float64 `json:"closingCredit"`
	// ExcludeFromAnalysis marks rows the caller wants converted but kept out
	// of aggregation and validations.
	ExcludeFromAnalysis bool `json:"excludeFromAnalysis,omitempty"`
}

// Classification is the resolved target-chart placement of a source code.
type Classification struct {
	TargetCode string   `json:"targetCode"`
	TargetName string   `json:"targetName"`
	Group      Group    `json:"group"`
	Subgroup   Subgroup `json:"subgroup"`
}

// Override is a manual classification supplied by the caller, keyed by row id
// or raw code. Blank fields are filled with sentinels at resolution time,
// never merged with the automatic result.
type Override struct {
	TargetCode string   `json:"targetCode,omitempty"`
	TargetName string   `json:"targetName,omitempty"`
	Group      Group    `json:"group,omitempty"`
	Subgroup   Subgroup `json:"subgroup,omitempty"`
}

// IsZero reports whether every override field is blank.
func (o Override) IsZero() bool {
	return o.TargetCode == "" && o.TargetName == "" && o.Group == "" && o.Subgroup == ""
}

// ConvertedRow is a Row plus its resolved classification and computed amounts.
type ConvertedRow struct {
	Row
	Classification
	// NetBalance is closing debit minus closing credit, in the source currency.
	NetBalance          float64 `json:"netBalance"`
	NetBalanceSecondary float64 `json:"netBalanceSecondary"`
	// Display amounts are sign-flipped for credit-normal groups so that
	// liabilities, equity and income read as positive figures.
	DisplayPrimary        float64 `json:"displayPrimary"`
	DisplaySecondary      float64 `json:"displaySecondary"`
	ManualOverrideApplied bool    `json:"manualOverrideApplied"`
	// SummaryLine marks source roll-up lines detected by their trailing-zero
	// code segments; they are excluded from aggregation.
	SummaryLine bool `json:"summaryLine,omitempty"`
	Excluded    bool `json:"excluded,omitempty"`
}

// AggregatedAccount is the per-target-code total of converted rows.
type AggregatedAccount struct {
	TargetCode     string         `json:"targetCode"`
	TargetName     string         `json:"targetName"`
	Group          Group          `json:"group"`
	Subgroup       Subgroup       `json:"subgroup"`
	TotalPrimary   float64        `json:"totalPrimary"`
	TotalSecondary float64        `json:"totalSecondary"`
	Rows           []ConvertedRow `json:"constituentRows"`
}

// StatementSection is one bucket of a financial statement with its subtotal.
type StatementSection struct {
	Accounts       []AggregatedAccount `json:"accounts"`
	TotalPrimary   float64             `json:"totalPrimary"`
	TotalSecondary float64             `json:"totalSecondary"`
}

// BalanceSheet groups aggregated accounts by Group and carries the identity
// totals. Difference is reported, never forced to zero.
type BalanceSheet struct {
	Groups                          map[Group]*StatementSection `json:"groups"`
	TotalAssetsPrimary              float64                     `json:"totalAssetsPrimary"`
	TotalAssetsSecondary            float64                     `json:"totalAssetsSecondary"`
	TotalEquityLiabilitiesPrimary   float64                     `json:"totalEquityLiabilitiesPrimary"`
	TotalEquityLiabilitiesSecondary float64                     `json:"totalEquityLiabilitiesSecondary"`
	DifferencePrimary               float64                     `json:"differencePrimary"`
	DifferenceSecondary             float64                     `json:"differenceSecondary"`
}

// ProfitAndLoss groups aggregated accounts by P&L section (Subgroup) and
// derives the statement subtotals independently in both currencies.
type ProfitAndLoss struct {
	Sections                 map[Subgroup]*StatementSection `json:"sections"`
	RevenuePrimary           float64                        `json:"revenuePrimary"`
	RevenueSecondary         float64                        `json:"revenueSecondary"`
	ExpensePrimary           float64                        `json:"expensePrimary"`
	ExpenseSecondary         float64                        `json:"expenseSecondary"`
	OperatingResultPrimary   float64                        `json:"operatingResultPrimary"`
	OperatingResultSecondary float64                        `json:"operatingResultSecondary"`
	FinancialResultPrimary   float64                        `json:"financialResultPrimary"`
	FinancialResultSecondary float64                        `json:"financialResultSecondary"`
	OtherResultsPrimary      float64                        `json:"otherResultsPrimary"`
	OtherResultsSecondary    float64                        `json:"otherResultsSecondary"`
	PreTaxResultPrimary      float64                        `json:"preTaxResultPrimary"`
	PreTaxResultSecondary    float64                        `json:"preTaxResultSecondary"`
}

// Validations carries the double-entry integrity checks. These are findings,
// not errors: an unbalanced ledger still produces a full result.
type Validations struct {
	TrialBalanceInitialDifference float64        `json:"trialBalanceInitialDifference"`
	TrialBalanceFinalDifference   float64        `json:"trialBalanceFinalDifference"`
	UnmappedRows                  []ConvertedRow `json:"unmappedRows"`
}

// Metadata summarizes one conversion call.
type Metadata struct {
	ExchangeRate         float64   `json:"exchangeRate"`
	RowCount             int       `json:"rowCount"`
	AnalyzedRowCount     int       `json:"analyzedRowCount"`
	SummaryExcludedCount int       `json:"summaryExcludedCount"`
	UnmappedCount        int       `json:"unmappedCount"`
	ManualOverrideCount  int       `json:"manualOverrideCount"`
	CoveragePct          float64   `json:"coveragePct"`
	GeneratedAt          time.Time `json:"generatedAt"`
}

// ConversionResult is the full output of one conversion call. It is created
// fresh on every call and never mutated afterwards.
type ConversionResult struct {
	Metadata     Metadata            `json:"metadata"`
	Rows         []ConvertedRow      `json:"rows"`
	Aggregates   []AggregatedAccount `json:"aggregates"`
	BalanceSheet BalanceSheet        `json:"balanceSheet"`
	PnL          ProfitAndLoss       `json:"pnl"`
	Validations  Validations         `json:"validations"`
}

// StoredPeriod is one persisted month: rows, manual overrides and the
// exchange rate they were analyzed with.
type StoredPeriod struct {
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	Filename     string              `json:"filename,omitempty"`
	ExchangeRate float64             `json:"exchangeRate"`
	UploadedAt   time.Time           `json:"uploadedAt"`
	Rows         []Row               `json:"rows"`
	Overrides    map[string]Override `json:"manualOverrides"`
}

// PeriodSummary is the listing shape for stored periods.
type PeriodSummary struct {
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Filename     string    `json:"filename,omitempty"`
	ExchangeRate float64   `json:"exchangeRate"`
	UploadedAt   time.Time `json:"uploadedAt"`
	RowCount     int       `json:"rowCount"`
}

// PeriodKey builds the canonical year-month key, e.g. "2026-03".
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
