package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "jetgym"
  user: "jetgym"
  password: "secret"
  sslmode: "disable"
auth:
  api_key: "test-key-123"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all
// fields populated and the session TTL defaulted.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "jetgym" {
		t.Errorf("database.name = %q, want %q", cfg.Database.Name, "jetgym")
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
	if cfg.Auth.SessionTTLHours != 720 {
		t.Errorf("session_ttl_hours = %d, want 720 default", cfg.Auth.SessionTTLHours)
	}
}

// TestEnvOverride verifies that JETGYM_ env vars take precedence over
// YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("JETGYM_DB_HOST", "db.internal")
	t.Setenv("JETGYM_AUTH_API_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("database.host = %q, want env override", cfg.Database.Host)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want env override", cfg.Auth.APIKey)
	}
}

// TestDSN verifies the PostgreSQL connection string, including the
// sslmode default.
func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, Name: "jetgym", User: "u", Password: "p"}
	want := "postgres://u:p@localhost:5432/jetgym?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}

	d.SSLMode = "require"
	if got := d.DSN(); got != "postgres://u:p@localhost:5432/jetgym?sslmode=require" {
		t.Errorf("DSN with sslmode = %q", got)
	}
}

// TestValidateMissingFields verifies each required field is enforced.
func TestValidateMissingFields(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing server port", `
database: {host: h, port: 5432, name: n, user: u}
auth: {api_key: k}
`},
		{"missing database host", `
server: {port: 8080}
database: {port: 5432, name: n, user: u}
auth: {api_key: k}
`},
		{"missing api key", `
server: {port: 8080}
database: {host: h, port: 5432, name: n, user: u}
`},
		{"tailscale without hostname", `
database: {host: h, port: 5432, name: n, user: u}
auth: {api_key: k}
tailscale: {enabled: true}
`},
	}
	for _, c := range cases {
		if _, err := Load(writeTemp(t, c.yaml)); err == nil {
			t.Errorf("%s: want validation error", c.name)
		}
	}
}

// TestTailscaleDoesNotRequirePort verifies that a tsnet listener makes
// server.port optional.
func TestTailscaleDoesNotRequirePort(t *testing.T) {
	yaml := `
database: {host: h, port: 5432, name: n, user: u}
auth: {api_key: k}
tailscale: {enabled: true, hostname: jetgym}
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "jetgym" {
		t.Errorf("tailscale = %+v", cfg.Tailscale)
	}
}
