package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/kiosk-vote/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	SessionSecret string
	JuryPassword  string
	AdminUser     string
	AdminPass     string
	AdminPassHash string

	CloudSeedURL string
	Positions    []string

	VotingHours   int
	VotingMinutes int
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var positions string

	fs := flag.NewFlagSet("kiosk-vote", flag.ContinueOnError)

	// Network/storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CloudSeedURL, "seed-url", "", "Remote candidate seed URL (optional)")
	fs.StringVar(&positions, "positions", "", "Comma-separated elected positions")
	fs.IntVar(&cfg.VotingHours, "hours", -1, "Voting window hours")
	fs.IntVar(&cfg.VotingMinutes, "minutes", -1, "Voting window minutes")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing secret (prefer env)")
	fs.StringVar(&cfg.JuryPassword, "jury-password", "", "Shared jury password (prefer env)")
	fs.StringVar(&cfg.AdminUser, "admin-user", "", "Administrator username (prefer env)")
	fs.StringVar(&cfg.AdminPass, "admin-pass", "", "Administrator password (prefer env)")
	fs.StringVar(&cfg.AdminPassHash, "admin-pass-hash", "", "bcrypt hash of the administrator password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3419 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "kiosk.db" // local sqlite file next to the binary
	}

	if cfg.CloudSeedURL == "" {
		cfg.CloudSeedURL = os.Getenv("CLOUD_SEED_URL")
	}

	if positions == "" {
		positions = os.Getenv("POSITIONS")
	}
	if positions == "" {
		cfg.Positions = models.DefaultPositions
	} else {
		for _, p := range strings.Split(positions, ",") {
			p = strings.TrimSpace(strings.ToLower(p))
			if p != "" {
				cfg.Positions = append(cfg.Positions, p)
			}
		}
		if len(cfg.Positions) == 0 {
			return Config{}, errors.New("POSITIONS must name at least one position")
		}
	}

	if cfg.VotingHours < 0 {
		cfg.VotingHours = envInt("VOTING_HOURS", 8)
	}
	if cfg.VotingMinutes < 0 {
		cfg.VotingMinutes = envInt("VOTING_MINUTES", 0)
	}
	if cfg.VotingHours == 0 && cfg.VotingMinutes == 0 {
		return Config{}, errors.New("voting window duration must be greater than zero")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.JuryPassword == "" {
		cfg.JuryPassword = os.Getenv("JURY_PASSWORD")
	}
	if cfg.JuryPassword == "" {
		return Config{}, errors.New("JURY_PASSWORD required")
	}

	if cfg.AdminUser == "" {
		cfg.AdminUser = os.Getenv("ADMIN_USER")
	}
	if cfg.AdminUser == "" {
		return Config{}, errors.New("ADMIN_USER required")
	}

	if cfg.AdminPass == "" {
		cfg.AdminPass = os.Getenv("ADMIN_PASS")
	}
	if cfg.AdminPassHash == "" {
		cfg.AdminPassHash = os.Getenv("ADMIN_PASS_HASH")
	}
	if cfg.AdminPass == "" && cfg.AdminPassHash == "" {
		return Config{}, errors.New("ADMIN_PASS or ADMIN_PASS_HASH required")
	}

	return cfg, nil
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}
