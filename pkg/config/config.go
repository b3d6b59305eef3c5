package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// JobsSource selects the job source adapter: "postgres" (jobs table)
	// or "csv" (flat file at JobsCSVPath).
	JobsSource  string
	JobsCSVPath string

	// BookmarkStore selects bookmark persistence: "remote" (interactions
	// table, authenticated) or "local" (JSON file, single subject).
	BookmarkStore string
	BookmarksPath string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JobsSource:    getEnv("JOBS_SOURCE", "postgres"),
		JobsCSVPath:   getEnv("JOBS_CSV_PATH", "jobs.csv"),
		BookmarkStore: getEnv("BOOKMARK_STORE", "remote"),
		BookmarksPath: getEnv("BOOKMARKS_PATH", "bookmarks.json"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "jobboard"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
