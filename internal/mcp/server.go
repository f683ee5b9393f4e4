package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/jetgym/internal/analytics"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("JetGym", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("JetGym workout tracking server. Query workouts, training volume, personal records, and consistency insights. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, svc: analytics.NewService(ds), log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetWeeklyVolume, Handler: h.getWeeklyVolume},
		server.ServerTool{Tool: toolGetMuscleGroupVolume, Handler: h.getMuscleGroupVolume},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetConsistencyInsight, Handler: h.getConsistencyInsight},
		server.ServerTool{Tool: toolSuggestExercises, Handler: h.suggestExercises},
		server.ServerTool{Tool: toolGetDataStats, Handler: h.getDataStats},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resConsistencyReport, Handler: h.consistencyReport},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	svc *analytics.Service
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentWorkouts = mcp.NewResource(
	"jetgym://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts from the last 14 days with exercises and sets"),
	mcp.WithMIMEType("application/json"),
)

var resConsistencyReport = mcp.NewResource(
	"jetgym://consistency_report",
	"Consistency Report",
	mcp.WithResourceDescription("Training consistency insight for the last 7 weeks: streak, score, patterns, and a recommendation"),
	mcp.WithMIMEType("application/json"),
)
