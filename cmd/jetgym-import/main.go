package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/jetgym/internal/config"
	"github.com/claude/jetgym/internal/importer"
	"github.com/claude/jetgym/internal/match"
	"github.com/claude/jetgym/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("path", "", "path to a CSV export file or a directory of exports (required)")
	stateDir := flag.String("state-dir", ".jetgym-import", "directory for the import state database")
	userID := flag.Int("user", 1, "user ID to import workouts for")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: jetgym-import -config config.yaml -path export.csv [-user 1] [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	info, err := os.Stat(*exportPath)
	if err != nil {
		log.Error("export path does not exist", "path", *exportPath)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	imp := importer.New(db, match.New(db, db), log, *dryRun)

	var stats *importer.Stats
	if info.IsDir() {
		state, err := importer.OpenStateDB(*stateDir)
		if err != nil {
			log.Error("failed to open state db", "error", err)
			os.Exit(1)
		}
		defer state.Close()

		stats, err = imp.ImportDir(ctx, *exportPath, state, *userID)
		if err != nil {
			log.Error("import failed", "error", err)
			printStats(log, stats)
			os.Exit(1)
		}
	} else {
		f, err := os.Open(*exportPath)
		if err != nil {
			log.Error("failed to open export", "error", err)
			os.Exit(1)
		}
		defer f.Close()

		stats, err = imp.ImportCSV(ctx, f, *userID)
		if err != nil {
			log.Error("import failed", "error", err)
			printStats(log, stats)
			os.Exit(1)
		}
	}

	printStats(log, stats)
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	if stats == nil {
		return
	}
	log.Info("import stats",
		"sessions_imported", stats.SessionsImported,
		"sessions_skipped", stats.SessionsSkipped,
		"exercises_imported", stats.ExercisesImported,
		"sets_imported", stats.SetsImported,
	)
}
