// Package workbook adapts between XLSX files and trial-balance rows. Parsing
// follows the source export layout: a fixed-position header row ("Cuenta",
// "Nombre", then the six amounts), with a loose header-synonym fallback for
// other spreadsheets. Export writes the three control sheets the finance
// side works with.
package workbook

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/balanza-dev/balanza/internal/errs"
	"github.com/balanza-dev/balanza/internal/normalize"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// Parse reads the first sheet of an XLSX workbook into normalized rows. The
// second return value lists canonical fields never observed in the input
// (only populated by the loose fallback path).
func Parse(r io.Reader) ([]tb.Row, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrInvalid, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%w: workbook has no sheets", errs.ErrInvalid)
	}
	matrix, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}

	if rows := parseFixedLayout(matrix); len(rows) > 0 {
		return rows, nil, nil
	}

	// Loose fallback: first row is headers, remaining rows are records.
	if len(matrix) < 2 {
		return nil, nil, fmt.Errorf("%w: no data rows", errs.ErrInvalid)
	}
	headers := matrix[0]
	records := make([]map[string]any, 0, len(matrix)-1)
	for _, raw := range matrix[1:] {
		rec := make(map[string]any, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				rec[h] = raw[i]
			}
		}
		records = append(records, rec)
	}
	rows, missing := normalize.Records(records)
	return rows, missing, nil
}

// parseFixedLayout scans for the source export's header row and reads the
// eight fixed columns below it. Rows whose first cell has no digit are
// skipped (separator and footer lines).
func parseFixedLayout(matrix [][]string) []tb.Row {
	headerIdx := -1
	for i, raw := range matrix {
		c0 := normalize.FoldHeader(cell(raw, 0))
		c1 := normalize.FoldHeader(cell(raw, 1))
		if c0 == "cuenta" && strings.Contains(c1, "nombre") {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}
	rows := make([]tb.Row, 0)
	for _, raw := range matrix[headerIdx+1:] {
		code := strings.TrimSpace(cell(raw, 0))
		if code == "" || !hasDigit(code) {
			continue
		}
		name := strings.TrimSpace(cell(raw, 1))
		if name == "" {
			name = normalize.NoDescription
		}
		rows = append(rows, tb.Row{
			ID:            "row-" + strconv.Itoa(len(rows)+1),
			Code:          code,
			Name:          name,
			OpeningDebit:  normalize.Number(cell(raw, 2)),
			OpeningCredit: normalize.Number(cell(raw, 3)),
			PeriodDebit:   normalize.Number(cell(raw, 4)),
			PeriodCredit:  normalize.Number(cell(raw, 5)),
			ClosingDebit:  normalize.Number(cell(raw, 6)),
			ClosingCredit: normalize.Number(cell(raw, 7)),
		})
	}
	return rows
}

func cell(raw []string, i int) string {
	if i < len(raw) {
		return raw[i]
	}
	return ""
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// Export renders a conversion result as an XLSX workbook with the detail
// mapping, the aggregated PGC balance and the validation controls.
func Export(result tb.ConversionResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const detailSheet = "Mapeo"
	f.SetSheetName(f.GetSheetName(0), detailSheet)
	if err := writeRows(f, detailSheet, [][]any{{
		"Cta origen", "Nombre origen", "Cta PGC", "Nombre PGC",
		"Grupo", "Subgrupo", "Saldo MXN", "Saldo EUR",
	}}, 1); err != nil {
		return nil, err
	}
	detail := make([][]any, 0, len(result.Rows))
	for _, r := range result.Rows {
		detail = append(detail, []any{
			r.Code, r.Name, r.TargetCode, r.TargetName,
			string(r.Group), string(r.Subgroup), r.DisplayPrimary, r.DisplaySecondary,
		})
	}
	if err := writeRows(f, detailSheet, detail, 2); err != nil {
		return nil, err
	}

	const aggSheet = "Balanza_PGC"
	if _, err := f.NewSheet(aggSheet); err != nil {
		return nil, err
	}
	agg := [][]any{{"Cta PGC", "Nombre PGC", "Grupo", "Subgrupo", "Total MXN", "Total EUR"}}
	for _, a := range result.Aggregates {
		agg = append(agg, []any{
			a.TargetCode, a.TargetName, string(a.Group), string(a.Subgroup),
			a.TotalPrimary, a.TotalSecondary,
		})
	}
	if err := writeRows(f, aggSheet, agg, 1); err != nil {
		return nil, err
	}

	const validationSheet = "Validaciones"
	if _, err := f.NewSheet(validationSheet); err != nil {
		return nil, err
	}
	validations := [][]any{
		{"Control", "Valor"},
		{"Dif. balanza inicial (Debe-Haber)", result.Validations.TrialBalanceInitialDifference},
		{"Dif. balanza final (Debe-Haber)", result.Validations.TrialBalanceFinalDifference},
		{"Dif. balance PGC (Activo - PN y Pasivo)", result.BalanceSheet.DifferencePrimary},
		{"Cobertura mapeo (%)", result.Metadata.CoveragePct},
		{"Sin mapeo", result.Metadata.UnmappedCount},
	}
	if err := writeRows(f, validationSheet, validations, 1); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, startRow int) error {
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return err
		}
	}
	return nil
}
