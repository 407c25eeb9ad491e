package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, sourced from environment variables.
type Config struct {
	ListenAddr string
	BaseURL    string

	// BookingDurationMinutes is the default booking length when a draft
	// sets no explicit end time.
	BookingDurationMinutes int
	// AgendaLimit caps the agenda/conflict summary.
	AgendaLimit int
	// SeedDemoData loads the demo bookings at startup.
	SeedDemoData bool

	PrometheusEnabled bool
	TrustedProxies    []string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.ListenAddr = getenvDefault("APP_LISTEN_ADDR", ":8080")
	cfg.BaseURL = getenvDefault("APP_BASE_URL", "http://localhost:8080")
	cfg.BookingDurationMinutes = getenvInt("APP_BOOKING_DURATION_MINUTES", 60)
	cfg.AgendaLimit = getenvInt("APP_AGENDA_LIMIT", 5)
	cfg.SeedDemoData = getenvBool("APP_SEED_DEMO_DATA", true)
	cfg.PrometheusEnabled = getenvBool("APP_PROMETHEUS_ENDPOINT_ENABLED", false)
	cfg.TrustedProxies = getenvList("APP_TRUSTED_PROXIES")

	if cfg.BookingDurationMinutes <= 0 {
		return nil, fmt.Errorf("APP_BOOKING_DURATION_MINUTES must be positive (got %d)", cfg.BookingDurationMinutes)
	}
	if cfg.AgendaLimit <= 0 {
		return nil, fmt.Errorf("APP_AGENDA_LIMIT must be positive (got %d)", cfg.AgendaLimit)
	}

	if len(cfg.TrustedProxies) == 0 {
		fmt.Println("WARNING: No APP_TRUSTED_PROXIES configured. The server will trust all proxies - Not recommended for public environments.")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return def
}

func getenvList(key string) []string {
	if v := os.Getenv(key); v != "" {
		var result []string
		for _, item := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return nil
}
