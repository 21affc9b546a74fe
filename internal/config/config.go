package config

import (
	"os"
	"time"
)

// Config holds everything the server reads from the environment.
// main calls godotenv.Load() first so a local .env file works in dev.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadDir   string
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "5000"),
		DatabaseDSN: getenv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"),
		JWTSecret:   getenv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:      getduration("JWT_TTL", 24*time.Hour),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
