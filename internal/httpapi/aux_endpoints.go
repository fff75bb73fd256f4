package httpapi

import (
	"context"
	"net/http"
	"time"
)

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	// If the store implements ReadyChecker, probe it with a short timeout.
	type readyIf interface{ Ready(context.Context) error }
	if rc, ok := s.store.(readyIf); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := rc.Ready(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
