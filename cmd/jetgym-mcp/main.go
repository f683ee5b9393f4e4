package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/jetgym/internal/config"
	jetgymmcp "github.com/claude/jetgym/internal/mcp"
	"github.com/claude/jetgym/internal/match"
	"github.com/claude/jetgym/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	remoteURL := flag.String("remote", "", "base URL of a remote JetGym server (uses the REST API instead of a local database)")
	remoteToken := flag.String("token", "", "session token for remote mode")
	userID := flag.Int("user", 1, "user ID to serve data for (local mode)")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds jetgymmcp.DataSource

	if *remoteURL != "" {
		if *remoteToken == "" {
			log.Error("remote mode requires -token")
			os.Exit(1)
		}
		ds = jetgymmcp.NewHTTPClient(*remoteURL, *remoteToken)
		log.Info("JetGym MCP starting", "version", Version, "mode", "remote", "url", *remoteURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ds = jetgymmcp.NewLocalSource(db, match.New(db, db))
		log.Info("JetGym MCP starting", "version", Version, "mode", "local")
	}

	srv := jetgymmcp.New(ds, Version, log)

	err := server.ServeStdio(srv,
		server.WithStdioContextFunc(func(ctx context.Context) context.Context {
			return jetgymmcp.WithUserID(ctx, *userID)
		}),
	)
	if err != nil {
		log.Error("mcp server stopped", "error", err)
		os.Exit(1)
	}
}
