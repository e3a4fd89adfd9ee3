package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	ServerPort string
	GinMode    string
	PageSize   int

	JWTSecret     string
	JWTIssuer     string
	JWTAccessTTL  time.Duration
	JWTRefreshTTL time.Duration

	LogDevelopment bool

	// EnvFile reports whether a .env file was read.
	EnvFile bool
}

func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "tasktracker"),
		DBPassword:     getEnv("DB_PASSWORD", "tasktracker"),
		DBName:         getEnv("DB_NAME", "tasktracker"),
		SQLitePath:     getEnv("SQLITE_PATH", "tasktracker.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		PageSize:       getInt("PAGE_SIZE", 20),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretkey"),
		JWTIssuer:      getEnv("JWT_ISSUER", "tasktracker"),
		JWTAccessTTL:   getDuration("JWT_ACCESS_TTL", 60*time.Minute),
		JWTRefreshTTL:  getDuration("JWT_REFRESH_TTL", 24*time.Hour),
		LogDevelopment: getBool("LOG_DEVELOPMENT", false),
		EnvFile:        loaded,
	}
}

func getEnv(key, defaultVal string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return defaultVal
}
