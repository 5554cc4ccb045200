package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string
	Location  string

	// Programmable Search Engine
	PSEAPIKey           string
	PSEEngineID         string
	SearchRatePerSecond float64

	// Server
	Port  string
	Debug bool

	// Gemini Model
	GeminiModel string

	// Timeouts
	HTTPTimeoutSeconds int
	HTTPMaxRetries     int
	MaxJobResults      int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	GoogleClientID string

	// CV storage: "gcs" or "s3"
	CVStorage    string
	CVBucketName string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3Bucket     string

	// Job pool
	JobCachePath     string
	FallbackJobsPath string

	// Matching
	PolicyPath  string
	CatalogPath string
	DefaultTopN int

	// Events
	AMQPURL      string
	AMQPExchange string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// Programmable Search Engine
		PSEAPIKey:           getEnv("PSE_API_KEY", ""),
		PSEEngineID:         getEnv("PSE_ENGINE_ID", ""),
		SearchRatePerSecond: getEnvFloat("SEARCH_RATE_PER_SECOND", 2),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Gemini Model
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Timeouts and limits
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		HTTPMaxRetries:     getEnvInt("HTTP_MAX_RETRIES", 2),
		MaxJobResults:      getEnvInt("MAX_JOB_RESULTS", 50),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		// CV storage
		CVStorage:    strings.ToLower(getEnv("CV_STORAGE", "gcs")),
		CVBucketName: getEnv("CV_BUCKET_NAME", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
		S3Bucket:     getEnv("S3_BUCKET", ""),

		// Job pool
		JobCachePath:     getEnv("JOB_CACHE_PATH", "jobfit-cache.db"),
		FallbackJobsPath: getEnv("FALLBACK_JOBS_PATH", ""),

		// Matching
		PolicyPath:  getEnv("POLICY_PATH", ""),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		DefaultTopN: getEnvInt("DEFAULT_TOP_N", 10),

		// Events
		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "jobfit.events"),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// ProjectID is required for Firestore and Vertex AI
	if c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Firestore and Vertex AI"}
	}

	switch c.CVStorage {
	case "gcs":
	case "s3":
		if c.S3AccessKey == "" || c.S3SecretKey == "" {
			return &ConfigError{Field: "S3_ACCESS_KEY", Message: "S3_ACCESS_KEY and S3_SECRET_KEY are required when CV_STORAGE=s3"}
		}
		if c.S3Bucket == "" {
			return &ConfigError{Field: "S3_BUCKET", Message: "S3_BUCKET is required when CV_STORAGE=s3"}
		}
	default:
		return &ConfigError{Field: "CV_STORAGE", Message: "CV_STORAGE must be gcs or s3"}
	}

	if c.DefaultTopN <= 0 {
		return &ConfigError{Field: "DEFAULT_TOP_N", Message: "DEFAULT_TOP_N must be positive"}
	}
	if c.SearchRatePerSecond <= 0 {
		return &ConfigError{Field: "SEARCH_RATE_PER_SECOND", Message: "SEARCH_RATE_PER_SECOND must be positive"}
	}

	return nil
}

// LiveSearchEnabled reports whether PSE credentials are configured. Without
// them the job pool comes from the cache and the fallback file only.
func (c *Config) LiveSearchEnabled() bool {
	return c.PSEAPIKey != "" && c.PSEEngineID != ""
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
