package config

import (
	"os"
	"strconv"
	"strings"
)

// InsecureDefaultJWTSecret is the local-development fallback signing secret.
// A deployed instance must always supply JWT_SECRET; cmd/server logs a loud
// warning when this value is still in use.
const InsecureDefaultJWTSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	JWTExpiryHours int
	AllowedOrigins []string
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/tasktrack?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", InsecureDefaultJWTSecret),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 168), // 7 days
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", "*"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

// UsingDefaultJWTSecret reports whether the insecure development secret is active.
func (c *Config) UsingDefaultJWTSecret() bool {
	return c.JWTSecret == InsecureDefaultJWTSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
