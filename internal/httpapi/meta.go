package httpapi

import (
	"net/http"

	"github.com/balanza-dev/balanza/internal/pgcmap"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

func (s *Server) getMappingMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pgcmap.Stats())
}

func (s *Server) getSample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]tb.Row{"rows": tb.SampleRows()})
}
