package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balanza-dev/balanza/internal/errs"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeErr maps sentinel errors to HTTP statuses; anything unknown is a 500.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrUnprocessable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
