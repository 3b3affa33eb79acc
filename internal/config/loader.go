package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration values for the console
// and the reference backend.
type Config struct {
	BackendURL     string
	ConsolePort    int
	RequestTimeout time.Duration
	DeleteControls bool
	ExportDir      string
	BackendPort    int
	SQLiteDSN      string
}

// LoadDotenv reads KEY=VALUE pairs from the given files into the process
// environment. Variables that are already set keep their value and missing
// files are skipped.
func LoadDotenv(paths ...string) error {
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("impossible de lire le fichier %s: %w", path, err)
		}
	}
	return nil
}

// Load parses configuration values from the current process environment.
//
// Optional fields fall back to defaults; every malformed value is collected
// and reported in a single localized error.
func Load() (Config, error) {
	cfg := Config{
		BackendURL:     "http://localhost:8080",
		ConsolePort:    8081,
		RequestTimeout: 0,
		DeleteControls: true,
		ExportDir:      ".",
		BackendPort:    8080,
		SQLiteDSN:      "file:reservation.db",
	}

	invalid := make([]string, 0, 4)

	if raw := strings.TrimSpace(os.Getenv("RESERVATION_BACKEND_URL")); raw != "" {
		parsed, err := url.Parse(raw)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			invalid = append(invalid, "RESERVATION_BACKEND_URL")
		} else {
			cfg.BackendURL = strings.TrimRight(raw, "/")
		}
	}

	if port, ok, err := positiveInt("RESERVATION_CONSOLE_PORT"); err != nil {
		invalid = append(invalid, "RESERVATION_CONSOLE_PORT")
	} else if ok {
		cfg.ConsolePort = port
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("RESERVATION_REQUEST_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout < 0 {
			invalid = append(invalid, "RESERVATION_REQUEST_TIMEOUT")
		} else {
			cfg.RequestTimeout = timeout
		}
	}

	if controls := strings.TrimSpace(os.Getenv("RESERVATION_DELETE_CONTROLS")); controls != "" {
		enabled, err := strconv.ParseBool(controls)
		if err != nil {
			invalid = append(invalid, "RESERVATION_DELETE_CONTROLS")
		} else {
			cfg.DeleteControls = enabled
		}
	}

	if dir := strings.TrimSpace(os.Getenv("RESERVATION_EXPORT_DIR")); dir != "" {
		cfg.ExportDir = dir
	}

	if port, ok, err := positiveInt("RESERVATION_BACKEND_PORT"); err != nil {
		invalid = append(invalid, "RESERVATION_BACKEND_PORT")
	} else if ok {
		cfg.BackendPort = port
	}

	if dsn := strings.TrimSpace(os.Getenv("RESERVATION_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("valeurs de variables d'environnement invalides: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func positiveInt(key string) (int, bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	if value <= 0 {
		return 0, false, fmt.Errorf("%s must be positive", key)
	}
	return value, true, nil
}
