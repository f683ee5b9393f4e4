package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/jetgym/internal/models"
	"github.com/google/uuid"
)

func (s *Server) handleCreateSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var set models.ExerciseSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if set.ExerciseID == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exerciseId is required"})
		return
	}

	set.ID = uuid.New()
	if err := s.db.InsertExerciseSet(r.Context(), set, userID); err != nil {
		s.writeError(w, err)
		return
	}
	created, err := s.db.GetExerciseSet(r.Context(), set.ID, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set id"})
		return
	}
	set, err := s.db.GetExerciseSet(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set id"})
		return
	}

	current, err := s.db.GetExerciseSet(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var set models.ExerciseSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	set.ID = id
	set.ExerciseID = current.ExerciseID

	if err := s.db.UpdateExerciseSet(r.Context(), set, userID); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.db.GetExerciseSet(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set id"})
		return
	}
	if err := s.db.DeleteExerciseSet(r.Context(), id, userID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
