package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Log        LogConfig
	Vocabulary VocabularyConfig

	// DotEnvLoaded reports whether a .env file was found next to the binary.
	DotEnvLoaded bool
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	TempDir     string
	MaxFileSize int64
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type VocabularyConfig struct {
	// File overrides the embedded vocabulary when set.
	File string
}

func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			TempDir:     getEnv("TMP_DIR", os.TempDir()),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", getEnv("ENV", "development") == "development"),
		},
		Vocabulary: VocabularyConfig{
			File: getEnv("VOCABULARY_FILE", ""),
		},
		DotEnvLoaded: loaded,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
