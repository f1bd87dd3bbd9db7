package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string

	RedisAddr string

	RabbitURL      string
	RabbitExchange string

	SessionTTLHours int

	ImageDir       string
	ImageServerURL string

	PublicBaseURL string
}

// Load reads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		MySQLUser:       getEnv("MYSQL_USER", "root"),
		MySQLPassword:   getEnv("MYSQL_PASSWORD", ""),
		MySQLHost:       getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:       getEnv("MYSQL_PORT", "3306"),
		MySQLDatabase:   getEnv("MYSQL_DATABASE", "diner"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RabbitURL:       getEnv("RABBITMQ_URL", ""),
		RabbitExchange:  getEnv("RABBITMQ_EXCHANGE", "diner.exchange"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 12),
		ImageDir:        getEnv("IMAGE_DIR", "/var/www/images/dishes"),
		ImageServerURL:  getEnv("IMAGE_SERVER_URL", "http://localhost:8080/images/dishes/"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid integer for %s: %s", key, v)
		return def
	}
	return n
}
