package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Ollama integration
	OllamaAPIURL string
	// Request handling
	RequestTimeoutSeconds int
	// Database pool
	DBMaxOpenConns int
	DBMaxIdleConns int
	// Other
	AllowedOrigins []string
	SeedOnStartup  bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		DBPath:                getEnv("DB_PATH", "db/app.db"),
		Environment:           environment,
		OllamaAPIURL:          normalizeBaseURL(getEnv("OLLAMA_API_URL", "http://localhost:11434/")),
		RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT_SECONDS", 30),
		DBMaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:        getEnvInt("DB_MAX_IDLE_CONNS", 5),
		AllowedOrigins:        strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SeedOnStartup:         getEnvBool("SEED_ON_STARTUP", environment == "development"),
	}
}

// normalizeBaseURL guarantees a trailing slash so endpoint paths can be appended directly
func normalizeBaseURL(u string) string {
	if !strings.HasSuffix(u, "/") {
		return u + "/"
	}
	return u
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
