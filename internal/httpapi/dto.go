package httpapi

import (
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// convertRequest is the JSON body for /v1/convert and /v1/export. Rows
// arrive as loose records because upstream spreadsheets disagree on header
// names; the normalizer sorts them out.
type convertRequest struct {
	Rows            []map[string]any       `json:"rows"`
	ExchangeRate    float64                `json:"exchangeRate,omitempty"`
	ManualOverrides map[string]tb.Override `json:"manualOverrides,omitempty"`
}

type convertResponse struct {
	tb.ConversionResult
	// MissingFields lists canonical fields absent from the input headers,
	// so callers can warn before trusting zeroed amounts.
	MissingFields []string `json:"missingFields,omitempty"`
}

// savePeriodRequest is the JSON body for POST /v1/periods.
type savePeriodRequest struct {
	Year            int                    `json:"year"`
	Month           int                    `json:"month"`
	Filename        string                 `json:"filename,omitempty"`
	ExchangeRate    float64                `json:"exchangeRate,omitempty"`
	Rows            []map[string]any       `json:"rows"`
	ManualOverrides map[string]tb.Override `json:"manualOverrides,omitempty"`
}

// temporalResponse wraps a derived conversion (year-to-date or month delta)
// together with the identity of the period it was derived for.
type temporalResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	View  string `json:"view"`
	tb.ConversionResult
}
