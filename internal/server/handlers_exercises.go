package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/claude/jetgym/internal/match"
	"github.com/claude/jetgym/internal/models"
	"github.com/google/uuid"
)

// annotateExercise fills in the derived fields of an exercise before it
// is stored: the normalized name, and the canonical link when the name
// resolves against the user's history or the dictionary.
func (s *Server) annotateExercise(ctx context.Context, ex *models.Exercise, userID int) error {
	ex.NormalizedName = match.Normalize(ex.Name)

	m, err := s.matcher.Resolve(ctx, ex.Name, userID)
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	switch {
	case m.Exercise != nil:
		ex.CanonicalID = m.Exercise.CanonicalID
		ex.CanonicalName = m.Exercise.CanonicalName
		if ex.MuscleGroup == "" {
			ex.MuscleGroup = m.Exercise.MuscleGroup
		}
	case m.Canonical != nil:
		id := m.Canonical.ID
		ex.CanonicalID = &id
		ex.CanonicalName = m.Canonical.Name
	}
	return nil
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var ex models.Exercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if ex.Name == "" || ex.WorkoutID == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise name and workoutId are required"})
		return
	}

	ex.ID = uuid.New()
	if err := s.annotateExercise(r.Context(), &ex, userID); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.InsertExercise(r.Context(), ex, userID); err != nil {
		s.writeError(w, err)
		return
	}

	created, err := s.db.GetExercise(r.Context(), ex.ID, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise id"})
		return
	}
	ex, err := s.db.GetExercise(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise id"})
		return
	}

	current, err := s.db.GetExercise(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var ex models.Exercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	ex.ID = id
	ex.WorkoutID = current.WorkoutID

	// A renamed exercise is re-resolved; an unchanged name keeps its link.
	if ex.Name != current.Name {
		ex.CanonicalID = nil
		ex.CanonicalName = ""
		if err := s.annotateExercise(r.Context(), &ex, userID); err != nil {
			s.writeError(w, err)
			return
		}
	} else {
		ex.NormalizedName = current.NormalizedName
		ex.CanonicalID = current.CanonicalID
		ex.CanonicalName = current.CanonicalName
	}

	if err := s.db.UpdateExercise(r.Context(), ex, userID); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.db.GetExercise(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise id"})
		return
	}
	if err := s.db.DeleteExercise(r.Context(), id, userID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExercisesByMuscleGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	group := r.URL.Query().Get("muscleGroup")
	if group == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "muscleGroup query parameter is required"})
		return
	}
	exercises, err := s.db.ExercisesByMuscleGroup(r.Context(), userID, group)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

// handleSuggestions serves exercise-name autocomplete for ?q=.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	suggestions, err := s.matcher.Suggest(r.Context(), r.URL.Query().Get("q"), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// handleResolveExercise resolves ?name= against history and the canonical
// dictionary without creating anything. A miss is a 200 with null fields,
// not a 404.
func (s *Server) handleResolveExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name query parameter is required"})
		return
	}
	m, err := s.matcher.Resolve(r.Context(), name, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := struct {
		Matched   bool                      `json:"matched"`
		Exercise  *models.Exercise          `json:"exercise,omitempty"`
		Canonical *models.CanonicalExercise `json:"canonical,omitempty"`
	}{}
	if m != nil {
		resp.Matched = true
		resp.Exercise = m.Exercise
		resp.Canonical = m.Canonical
	}
	writeJSON(w, http.StatusOK, resp)
}
