package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDatabase  string
	HTTPPort       int
	StaticDir      string
	StreamURL      string
	AllowedOrigins []string
	DebugMode      bool
}

// LoadConfig reads the environment, optionally seeded from a .env file.
// An empty MONGODB_URI is valid: the server then runs purely on the
// in-memory store.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "streamview"),
		HTTPPort:       getEnvAsInt("HTTP_PORT", 5001),
		StaticDir:      getEnv("STATIC_DIR", "client/build"),
		StreamURL:      getEnv("STREAM_URL", ""),
		AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		DebugMode:      getEnvAsBool("DEBUG_MODE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}

	parts := strings.Split(strValue, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
