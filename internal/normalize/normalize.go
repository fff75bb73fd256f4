// Package normalize turns loosely-typed input records into canonical
// trial-balance rows. Header matching is case- and diacritic-insensitive over
// a fixed synonym set, and numeric parsing favors Spanish/Latin-American
// locale formatting ("1.234,56") over literal decimal points.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// NoDescription is the name used when a row has no resolvable name.
const NoDescription = "no description"

// Canonical field names in their diagnostic-report order.
var canonicalFields = []string{
	"code", "name",
	"openingDebit", "openingCredit",
	"periodDebit", "periodCredit",
	"closingDebit", "closingCredit",
}

// synonyms maps folded header spellings to canonical fields. Keys must be
// pre-folded (lowercase, diacritics stripped, non-alphanumerics removed).
var synonyms = map[string]string{
	"codigo": "code", "codigocuenta": "code", "cuenta": "code", "code": "code",
	"nombre": "name", "descripcion": "name", "name": "name", "concepto": "name",
	"sid": "openingDebit", "saldoinicialdeudor": "openingDebit", "saldoinicialdebe": "openingDebit", "openingdebit": "openingDebit",
	"sia": "openingCredit", "saldoinicialacreedor": "openingCredit", "saldoinicialhaber": "openingCredit", "openingcredit": "openingCredit",
	"cargos": "periodDebit", "debe": "periodDebit", "movimientodebe": "periodDebit", "perioddebit": "periodDebit",
	"abonos": "periodCredit", "haber": "periodCredit", "movimientohaber": "periodCredit", "periodcredit": "periodCredit",
	"sfd": "closingDebit", "saldofinaldeudor": "closingDebit", "saldofinaldebe": "closingDebit", "closingdebit": "closingDebit",
	"sfa": "closingCredit", "saldofinalacreedor": "closingCredit", "saldofinalhaber": "closingCredit", "closingcredit": "closingCredit",
}

// FoldHeader lowercases a header, strips diacritics common in Spanish
// spreadsheets and drops every non-alphanumeric rune.
func FoldHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'á':
			r = 'a'
		case 'é':
			r = 'e'
		case 'í':
			r = 'i'
		case 'ó':
			r = 'o'
		case 'ú', 'ü':
			r = 'u'
		case 'ñ':
			r = 'n'
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Number coerces an arbitrary value to a finite float64, defaulting to zero.
// Textual values are parsed with decimal-comma precedence: whitespace and "."
// thousands separators are stripped, the last "," becomes the decimal point,
// and any remaining non [0-9.-] character is dropped before parsing.
func Number(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return Number(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	text := strings.TrimSpace(fmt.Sprint(v))
	text = strings.Join(strings.Fields(text), "")
	if text == "" {
		return 0
	}
	text = strings.ReplaceAll(text, ".", "")
	if i := strings.LastIndex(text, ","); i >= 0 {
		text = text[:i] + "." + text[i+1:]
	}
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	parsed, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

// Records normalizes a sequence of loose records into canonical rows and
// reports which canonical fields were never observed in any record. Records
// without a resolvable code are dropped silently. Row identity comes from a
// provided id ("_rowId", "rowId" or "id") or falls back to "row-N" where N is
// the record's position, so re-normalizing the same input keeps ids stable.
func Records(records []map[string]any) ([]tb.Row, []string) {
	rows := make([]tb.Row, 0, len(records))
	seen := make(map[string]bool, len(canonicalFields))

	for i, rec := range records {
		fields := make(map[string]any, len(rec))
		for k, v := range rec {
			if canon, ok := synonyms[FoldHeader(k)]; ok {
				fields[canon] = v
				seen[canon] = true
			}
		}
		code := asString(fields["code"])
		if code == "" {
			continue
		}
		name := asString(fields["name"])
		if name == "" {
			name = NoDescription
		}
		id := firstString(rec, "_rowId", "rowId", "id")
		if id == "" {
			id = "row-" + strconv.Itoa(i+1)
		}
		rows = append(rows, tb.Row{
			ID:                  id,
			Code:                code,
			Name:                name,
			OpeningDebit:        Number(fields["openingDebit"]),
			OpeningCredit:       Number(fields["openingCredit"]),
			PeriodDebit:         Number(fields["periodDebit"]),
			PeriodCredit:        Number(fields["periodCredit"]),
			ClosingDebit:        Number(fields["closingDebit"]),
			ClosingCredit:       Number(fields["closingCredit"]),
			ExcludeFromAnalysis: asBool(rec["_excludeFromAnalysis"]),
		})
	}

	missing := make([]string, 0)
	for _, f := range canonicalFields {
		if !seen[f] {
			missing = append(missing, f)
		}
	}
	return rows, missing
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func firstString(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(rec[k]); s != "" {
			return s
		}
	}
	return ""
}
