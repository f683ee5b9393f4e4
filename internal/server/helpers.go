package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/jetgym/internal/analytics"
	"github.com/claude/jetgym/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses: unknown rows are 404,
// bad arguments 400, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, analytics.ErrInvalidRange):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// mustUserID pulls the authenticated user from context, writing a 401
// when the auth middleware did not run.
func mustUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return 0, false
	}
	return id, true
}

// weeksBackParam parses the ?weeks query parameter, defaulting to 7.
func weeksBackParam(r *http.Request) int {
	if v := r.URL.Query().Get("weeks"); v != "" {
		if weeks, err := strconv.Atoi(v); err == nil {
			return weeks
		}
		return 0 // non-numeric input fails range validation downstream
	}
	return 7
}

// uuidParam parses a chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
