package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/jetgym/internal/models"
	"github.com/google/uuid"
)

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if workout.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "workout name is required"})
		return
	}

	workout.ID = uuid.New()
	workout.UserID = userID
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	if err := s.db.InsertWorkout(r.Context(), workout); err != nil {
		s.writeError(w, err)
		return
	}

	// Nested exercises and sets may ride along on workout creation.
	for i := range workout.Exercises {
		ex := &workout.Exercises[i]
		ex.ID = uuid.New()
		ex.WorkoutID = workout.ID
		if err := s.annotateExercise(r.Context(), ex, userID); err != nil {
			s.writeError(w, err)
			return
		}
		if err := s.db.InsertExercise(r.Context(), *ex, userID); err != nil {
			s.writeError(w, err)
			return
		}
		for j := range ex.Sets {
			set := &ex.Sets[j]
			set.ID = uuid.New()
			set.ExerciseID = ex.ID
			if err := s.db.InsertExerciseSet(r.Context(), *set, userID); err != nil {
				s.writeError(w, err)
				return
			}
		}
	}

	created, err := s.db.GetWorkout(r.Context(), workout.ID, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleListWorkouts returns workouts in an optional ?from / ?to date
// range (YYYY-MM-DD). Without parameters it returns everything.
func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" && to == "" {
		workouts, err := s.db.AllWorkouts(r.Context(), userID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, workouts)
		return
	}

	start, end, err := parseDateRange(from, to)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	workouts, err := s.db.WorkoutsInRange(r.Context(), userID, start, end)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id"})
		return
	}
	workout, err := s.db.GetWorkout(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id"})
		return
	}

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	workout.ID = id
	workout.UserID = userID

	if err := s.db.UpdateWorkout(r.Context(), workout); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.db.GetWorkout(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id"})
		return
	}
	if err := s.db.DeleteWorkout(r.Context(), id, userID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWorkoutExercises(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id"})
		return
	}
	workout, err := s.db.GetWorkout(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if workout.Exercises == nil {
		workout.Exercises = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, workout.Exercises)
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	var err error
	if from != "" {
		start, err = time.Parse("2006-01-02", from)
		if err != nil {
			return start, end, err
		}
	}
	if to != "" {
		end, err = time.Parse("2006-01-02", to)
		if err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}
