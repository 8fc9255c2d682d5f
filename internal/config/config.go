package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	Env        string
	LogFile    string
	APIBaseURL string        // hubweb: where the API server lives
	ProbeTTL   time.Duration // hubweb: how long a reachability verdict is trusted
}

func Load() Config {
	// .env is optional; real env vars win either way.
	if err := godotenv.Load(".env"); err == nil {
		log.Println("[config] loaded .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "harvesthub.db" // sqlite file in project root
	}
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}
	apiBase := os.Getenv("API_BASE_URL")
	if apiBase == "" {
		apiBase = "http://localhost:5000/api"
	}
	probeTTL := 30 * time.Second
	if v := os.Getenv("PROBE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			probeTTL = d
		}
	}

	cfg := Config{
		Port:       port,
		DBDSN:      dsn,
		Env:        env,
		LogFile:    os.Getenv("LOG_FILE"),
		APIBaseURL: apiBase,
		ProbeTTL:   probeTTL,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s ENV=%s API_BASE_URL=%s", cfg.Port, cfg.DBDSN, cfg.Env, cfg.APIBaseURL)
	return cfg
}
