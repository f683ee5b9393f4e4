package server

import "net/http"

func (s *Server) handleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	volumes, err := s.analytics.WeeklyVolume(r.Context(), userID, weeksBackParam(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, volumes)
}

func (s *Server) handleMuscleVolume(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	mv, err := s.analytics.MuscleGroupVolume(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mv)
}

func (s *Server) handlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	records, err := s.analytics.PersonalRecords(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleConsistency(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	insight, err := s.analytics.ConsistencyInsight(r.Context(), userID, weeksBackParam(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insight)
}

func (s *Server) handleDailyWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	counts, err := s.analytics.DailyWorkoutsCurrentWeek(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) handleWorkoutsPerWeek(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	perWeek, err := s.analytics.WorkoutsPerWeekOfYear(r.Context(), userID, weeksBackParam(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, perWeek)
}
