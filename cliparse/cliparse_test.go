// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	os.Setenv("SESSION_SECRET", "test-secret")
	os.Setenv("JURY_PASSWORD", "jury-pw")
	os.Setenv("ADMIN_USER", "admin")
	os.Setenv("ADMIN_PASS", "admin-pw")
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	setRequiredEnv(t)
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "kiosk.db" {
		t.Errorf("expected default sqlite path, got %s", cfg.DatabaseURL)
	}
	if len(cfg.Positions) != 2 || cfg.Positions[0] != "personeria" {
		t.Errorf("expected default positions, got %v", cfg.Positions)
	}
	if cfg.VotingHours != 8 || cfg.VotingMinutes != 0 {
		t.Errorf("expected default 8h window, got %dh%dm", cfg.VotingHours, cfg.VotingMinutes)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	setRequiredEnv(t)
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-positions", "Personeria, Contraloria, Cabildante"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if len(cfg.Positions) != 3 || cfg.Positions[2] != "cabildante" {
		t.Errorf("expected lowercased position list, got %v", cfg.Positions)
	}
}

func TestParseFlags_MissingSecrets(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Fatal("expected error when SESSION_SECRET is missing")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	setRequiredEnv(t)
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Fatal("expected error for postgres without DATABASE_URL")
	}
}

func TestParseFlags_ZeroDurationRejected(t *testing.T) {
	setRequiredEnv(t)
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-hours", "0", "-minutes", "0"}); err == nil {
		t.Fatal("expected error for zero-length voting window")
	}
}
