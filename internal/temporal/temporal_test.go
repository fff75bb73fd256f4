package temporal

import (
	"testing"

	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

func period(year, month int, rows ...tb.Row) tb.StoredPeriod {
	return tb.StoredPeriod{Year: year, Month: month, ExchangeRate: 0.05, Rows: rows}
}

func findByCode(t *testing.T, rows []tb.Row, code string) tb.Row {
	t.Helper()
	for _, r := range rows {
		if r.Code == code {
			return r
		}
	}
	t.Fatalf("code %s not in rows", code)
	return tb.Row{}
}

func TestRollUp_SumsAcrossPeriods(t *testing.T) {
	jan := period(2025, 1,
		tb.Row{ID: "a", Code: "101", Name: "Caja", ClosingDebit: 100},
		tb.Row{ID: "b", Code: "401", Name: "Ventas", ClosingCredit: 500},
	)
	feb := period(2025, 2,
		tb.Row{ID: "c", Code: "101", Name: "Caja", ClosingDebit: 150},
	)
	current := []tb.Row{
		{ID: "d", Code: "101", Name: "Caja y efectivo", ClosingDebit: 50},
	}

	rows, _ := RollUp([]tb.StoredPeriod{feb, jan}, current, nil)

	cash := findByCode(t, rows, "101")
	if cash.ClosingDebit != 300 {
		t.Fatalf("expected 300, got %v", cash.ClosingDebit)
	}
	if cash.ID != "ytd-101" {
		t.Fatalf("synthetic id expected, got %q", cash.ID)
	}
	// The latest non-empty name wins, current rows last.
	if cash.Name != "Caja y efectivo" {
		t.Fatalf("expected current name to win, got %q", cash.Name)
	}

	sales := findByCode(t, rows, "401")
	if sales.ClosingCredit != 500 {
		t.Fatalf("expected 500, got %v", sales.ClosingCredit)
	}
}

func TestRollUp_AllSixFields(t *testing.T) {
	jan := period(2025, 1, tb.Row{ID: "a", Code: "101",
		OpeningDebit: 1, OpeningCredit: 2, PeriodDebit: 3, PeriodCredit: 4, ClosingDebit: 5, ClosingCredit: 6})
	feb := period(2025, 2, tb.Row{ID: "b", Code: "101",
		OpeningDebit: 10, OpeningCredit: 20, PeriodDebit: 30, PeriodCredit: 40, ClosingDebit: 50, ClosingCredit: 60})

	rows, _ := RollUp([]tb.StoredPeriod{jan, feb}, nil, nil)
	r := findByCode(t, rows, "101")
	want := tb.Row{ID: "ytd-101", Code: "101",
		OpeningDebit: 11, OpeningCredit: 22, PeriodDebit: 33, PeriodCredit: 44, ClosingDebit: 55, ClosingCredit: 66}
	if r != want {
		t.Fatalf("got %+v, want %+v", r, want)
	}
}

func TestRollUp_OverrideUnion(t *testing.T) {
	jan := period(2025, 1, tb.Row{ID: "row-1", Code: "101", ClosingDebit: 100})
	jan.Overrides = map[string]tb.Override{
		"row-1": {TargetCode: "570"}, // keyed by row id, must re-key to code
		"999":   {TargetCode: "400"}, // already a code
	}
	feb := period(2025, 2, tb.Row{ID: "row-1", Code: "101", ClosingDebit: 50})
	feb.Overrides = map[string]tb.Override{
		"row-1": {TargetCode: "572"}, // later period wins for the same code
	}

	_, overrides := RollUp([]tb.StoredPeriod{jan, feb}, nil, nil)
	if got := overrides["101"].TargetCode; got != "572" {
		t.Fatalf("expected later override to win, got %q", got)
	}
	if got := overrides["999"].TargetCode; got != "400" {
		t.Fatalf("code-keyed override should pass through, got %q", got)
	}
	if _, ok := overrides["row-1"]; ok {
		t.Fatalf("row-id keys must not survive re-keying")
	}
}

func TestRollUp_CurrentOverridesWin(t *testing.T) {
	jan := period(2025, 1, tb.Row{ID: "a", Code: "101", ClosingDebit: 100})
	jan.Overrides = map[string]tb.Override{"101": {TargetCode: "570"}}
	current := []tb.Row{{ID: "x", Code: "101", ClosingDebit: 10}}
	currentOverrides := map[string]tb.Override{"x": {TargetCode: "573"}}

	_, overrides := RollUp([]tb.StoredPeriod{jan}, current, currentOverrides)
	if got := overrides["101"].TargetCode; got != "573" {
		t.Fatalf("current override should win, got %q", got)
	}
}

func TestDifference_Basic(t *testing.T) {
	previous := []tb.Row{
		{ID: "a", Code: "101", Name: "Caja", ClosingDebit: 100},
		{ID: "b", Code: "401", Name: "Ventas", ClosingCredit: 500},
	}
	current := []tb.Row{
		{ID: "c", Code: "101", Name: "Caja", ClosingDebit: 160},
		{ID: "d", Code: "401", Name: "Ventas", ClosingCredit: 700},
	}

	rows := Difference(current, previous)
	cash := findByCode(t, rows, "101")
	if cash.ClosingDebit != 60 || cash.ID != "delta-101" {
		t.Fatalf("expected delta 60, got %+v", cash)
	}
	sales := findByCode(t, rows, "401")
	if sales.ClosingCredit != 200 {
		t.Fatalf("expected delta 200, got %+v", sales)
	}
}

func TestDifference_NewAccount(t *testing.T) {
	rows := Difference(
		[]tb.Row{{ID: "a", Code: "102-001", ClosingDebit: 75}},
		nil,
	)
	r := findByCode(t, rows, "102-001")
	if r.ClosingDebit != 75 {
		t.Fatalf("new account delta should equal current value: %+v", r)
	}
}

func TestDifference_ClosedOutAccount(t *testing.T) {
	previous := []tb.Row{{ID: "a", Code: "101", Name: "Caja", ClosingDebit: 500}}
	current := []tb.Row{{ID: "b", Code: "102-001", ClosingDebit: 500}}

	rows := Difference(current, previous)
	closed := findByCode(t, rows, "101")
	if closed.ClosingDebit != -500 {
		t.Fatalf("closed-out account should negate, got %+v", closed)
	}
	if closed.Name != "Caja" {
		t.Fatalf("closed-out row keeps its name, got %q", closed.Name)
	}
}

func TestDifference_NegligibleResidualSuppressed(t *testing.T) {
	previous := []tb.Row{{ID: "a", Code: "101", ClosingDebit: 0.004}}
	rows := Difference([]tb.Row{{ID: "b", Code: "401", ClosingCredit: 10}}, previous)
	for _, r := range rows {
		if r.Code == "101" {
			t.Fatalf("residual below epsilon should be dropped: %+v", r)
		}
	}
}

func TestDifference_DuplicateCodesSummed(t *testing.T) {
	current := []tb.Row{
		{ID: "a", Code: "101", ClosingDebit: 10},
		{ID: "b", Code: "101", ClosingDebit: 20},
	}
	rows := Difference(current, nil)
	if len(rows) != 1 || rows[0].ClosingDebit != 30 {
		t.Fatalf("duplicate codes should collapse, got %+v", rows)
	}
}

func TestOverridesByCode(t *testing.T) {
	rows := []tb.Row{{ID: "row-1", Code: "101"}}
	out := OverridesByCode(rows, map[string]tb.Override{
		"row-1": {TargetCode: "570"},
		"401":   {TargetCode: "705"},
		"blank": {},
	})
	if out["101"].TargetCode != "570" || out["401"].TargetCode != "705" {
		t.Fatalf("unexpected re-keying: %+v", out)
	}
	if len(out) != 2 {
		t.Fatalf("blank overrides should be dropped, got %+v", out)
	}
}
