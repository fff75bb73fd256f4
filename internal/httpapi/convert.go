package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/balanza-dev/balanza/internal/convert"
	"github.com/balanza-dev/balanza/internal/errs"
	"github.com/balanza-dev/balanza/internal/normalize"
	"github.com/balanza-dev/balanza/internal/workbook"
)

// maxUploadBytes caps workbook uploads at 20 MiB.
const maxUploadBytes = 20 << 20

func (s *Server) postConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "rows must be a non-empty array")
		return
	}

	rows, missing := normalize.Records(req.Rows)
	rate := req.ExchangeRate
	if rate == 0 {
		rate = s.defaultRate
	}
	result := convert.Rows(rows, convert.Options{
		ExchangeRate: rate,
		Overrides:    req.ManualOverrides,
	})
	conversionsTotal.WithLabelValues("json").Inc()
	writeJSON(w, http.StatusOK, convertResponse{ConversionResult: result, MissingFields: missing})
}

func (s *Server) postConvertUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	rows, missing, err := workbook.Parse(file)
	if err != nil {
		writeErr(w, fmt.Errorf("%w: %s", errs.ErrUnprocessable, err))
		return
	}
	if len(rows) == 0 {
		writeErr(w, fmt.Errorf("%w: no account rows found in %q", errs.ErrUnprocessable, header.Filename))
		return
	}

	rate := s.defaultRate
	if v := r.FormValue("exchangeRate"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "exchangeRate must be numeric")
			return
		}
		rate = parsed
	}

	result := convert.Rows(rows, convert.Options{ExchangeRate: rate})
	conversionsTotal.WithLabelValues("upload").Inc()
	writeJSON(w, http.StatusOK, convertResponse{ConversionResult: result, MissingFields: missing})
}

func (s *Server) postExport(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "rows must be a non-empty array")
		return
	}

	rows, _ := normalize.Records(req.Rows)
	rate := req.ExchangeRate
	if rate == 0 {
		rate = s.defaultRate
	}
	result := convert.Rows(rows, convert.Options{
		ExchangeRate: rate,
		Overrides:    req.ManualOverrides,
	})

	conversionsTotal.WithLabelValues("export").Inc()

	data, err := workbook.Export(result)
	if err != nil {
		s.log.Error("workbook export failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="balanza_pgc.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
