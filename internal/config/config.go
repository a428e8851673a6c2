package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type APIConfig struct {
	Addr              string
	StoreDriver       string
	DatabaseURL       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	SaveFilePath      string
	OracleURL         string
	MatchSpeed        int
	RequireFullLineup bool
	ShutdownGrace     time.Duration
}

type CLIConfig struct {
	APIBaseURL string
}

func LoadAPIFromEnv() (APIConfig, error) {
	addr := os.Getenv("PORT")
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("TOUCHLINE_API_ADDR", ":8080")
	}

	cfg := APIConfig{
		Addr:              addr,
		StoreDriver:       strings.ToLower(envDefault("TOUCHLINE_STORE", "file")),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:         envDefault("TOUCHLINE_REDIS_ADDR", "localhost:6379"),
		RedisPassword:     strings.TrimSpace(os.Getenv("TOUCHLINE_REDIS_PASSWORD")),
		RedisDB:           envIntDefault("TOUCHLINE_REDIS_DB", 0),
		SaveFilePath:      strings.TrimSpace(os.Getenv("TOUCHLINE_SAVE_FILE")),
		OracleURL:         strings.TrimRight(strings.TrimSpace(os.Getenv("TOUCHLINE_ORACLE_URL")), "/"),
		MatchSpeed:        envIntDefault("TOUCHLINE_MATCH_SPEED", 1),
		RequireFullLineup: envBoolDefault("TOUCHLINE_REQUIRE_FULL_LINEUP", true),
		ShutdownGrace:     envDurationDefault("TOUCHLINE_SHUTDOWN_GRACE", 10*time.Second),
	}
	if cfg.StoreDriver == "postgres" && cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is required when TOUCHLINE_STORE=postgres")
	}
	return cfg, nil
}

func LoadCLIFromEnv() CLIConfig {
	return CLIConfig{
		APIBaseURL: strings.TrimRight(envDefault("TCH_API_BASE_URL", "http://localhost:8080"), "/"),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envDurationDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envIntDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBoolDefault(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
