package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	OCR        OCRConfig
	Extraction ExtractionConfig
}

// ServerConfig holds daemon-related configuration
type ServerConfig struct {
	HTTPAddr    string
	MaxBodySize int64
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Language    string
	TessdataDir string
}

// ExtractionConfig holds pipeline thresholds and vocabulary overrides
type ExtractionConfig struct {
	DefaultCurrency  string
	MatchRadius      float64 // max px between word-box centroid and region center
	ReviewThreshold  int     // items below this confidence are flagged
	FallbackMinPrice float64
	FallbackMaxPrice float64
	VocabPath        string // optional JSON vocabulary override file
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
			MaxBodySize: getEnvAsInt64("MAX_BODY_SIZE", 32<<20),
		},
		OCR: OCRConfig{
			Language:    getEnv("OCR_LANGUAGE", "eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
		Extraction: ExtractionConfig{
			DefaultCurrency:  getEnv("DEFAULT_CURRENCY", "$"),
			MatchRadius:      getEnvAsFloat64("IMAGE_MATCH_RADIUS", 300),
			ReviewThreshold:  getEnvAsInt("REVIEW_THRESHOLD", 80),
			FallbackMinPrice: getEnvAsFloat64("FALLBACK_MIN_PRICE", 0.5),
			FallbackMaxPrice: getEnvAsFloat64("FALLBACK_MAX_PRICE", 100000),
			VocabPath:        getEnv("VOCAB_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Extraction.DefaultCurrency == "" {
		return NewAppError("CONFIG_ERROR", "DEFAULT_CURRENCY is required", ErrInvalidInput)
	}
	if c.Extraction.MatchRadius <= 0 {
		return NewAppError("CONFIG_ERROR", "IMAGE_MATCH_RADIUS must be positive", ErrInvalidInput)
	}
	if c.Extraction.FallbackMinPrice >= c.Extraction.FallbackMaxPrice {
		return NewAppError("CONFIG_ERROR", "fallback price bounds are inverted", ErrInvalidInput)
	}
	return nil
}
