package server

import (
	"net/http"
	"strconv"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	stats, err := s.db.GetDataStats(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleImport ingests a CSV training-log export posted as the request
// body. The target user comes from ?userId, defaulting to 1.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	userID := 1
	if v := r.URL.Query().Get("userId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid userId"})
			return
		}
		userID = id
	}

	stats, err := s.importer.ImportCSV(r.Context(), r.Body, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
