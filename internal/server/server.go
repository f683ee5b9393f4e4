package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/jetgym/internal/analytics"
	"github.com/claude/jetgym/internal/importer"
	"github.com/claude/jetgym/internal/match"
	"github.com/claude/jetgym/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db         *storage.DB
	analytics  *analytics.Service
	matcher    *match.Matcher
	importer   *importer.Importer
	log        *slog.Logger
	apiKey     string
	sessionTTL int // hours
	router     chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, svc *analytics.Service, matcher *match.Matcher, imp *importer.Importer, apiKey string, sessionTTLHours int, log *slog.Logger) *Server {
	s := &Server{
		db:         db,
		analytics:  svc,
		matcher:    matcher,
		importer:   imp,
		log:        log,
		apiKey:     apiKey,
		sessionTTL: sessionTTLHours,
		router:     chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Auth endpoints (no session required)
	s.router.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
	})

	// Bulk import (API key required)
	s.router.Route("/api/v1/import", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleImport)
	})

	// Everything else requires a session token
	s.router.Group(func(r chi.Router) {
		r.Use(SessionAuth(s.db))

		r.Route("/api/v1/workouts", func(r chi.Router) {
			r.Post("/", s.handleCreateWorkout)
			r.Get("/", s.handleListWorkouts)
			r.Get("/{id}", s.handleGetWorkout)
			r.Put("/{id}", s.handleUpdateWorkout)
			r.Delete("/{id}", s.handleDeleteWorkout)
			r.Get("/{id}/exercises", s.handleWorkoutExercises)
		})

		r.Route("/api/v1/exercises", func(r chi.Router) {
			r.Post("/", s.handleCreateExercise)
			r.Get("/", s.handleExercisesByMuscleGroup)
			r.Get("/suggestions", s.handleSuggestions)
			r.Get("/resolve", s.handleResolveExercise)
			r.Get("/{id}", s.handleGetExercise)
			r.Put("/{id}", s.handleUpdateExercise)
			r.Delete("/{id}", s.handleDeleteExercise)
		})

		r.Route("/api/v1/sets", func(r chi.Router) {
			r.Post("/", s.handleCreateSet)
			r.Get("/{id}", s.handleGetSet)
			r.Put("/{id}", s.handleUpdateSet)
			r.Delete("/{id}", s.handleDeleteSet)
		})

		r.Route("/api/v1/analytics", func(r chi.Router) {
			r.Get("/weekly-volume", s.handleWeeklyVolume)
			r.Get("/muscle-volume", s.handleMuscleVolume)
			r.Get("/personal-records", s.handlePersonalRecords)
			r.Get("/consistency", s.handleConsistency)
			r.Get("/daily-workouts", s.handleDailyWorkouts)
			r.Get("/weeks-of-year", s.handleWorkoutsPerWeek)
		})

		r.Get("/api/v1/stats", s.handleStats)
	})
}
