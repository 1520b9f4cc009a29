package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Debug       bool
	CORSOrigins []string

	// Taxonomy
	TaxonomySource string
	TaxonomyFile   string
	StrictRoles    bool

	// Limits
	MaxUploadMB        int
	HTTPTimeoutSeconds int

	// Google Cloud (gs:// and firestore:// taxonomy sources)
	ProjectID             string
	GoogleCredentialsFile string

	// S3 compatible storage (s3:// taxonomy sources)
	AWSRegion   string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Debug:       getEnvBool("DEBUG", false),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		// Taxonomy
		TaxonomySource: getEnv("TAXONOMY_SOURCE", ""),
		TaxonomyFile:   getEnv("TAXONOMY_FILE", "taxonomy.yaml"),
		StrictRoles:    getEnvBool("STRICT_ROLES", true),

		// Limits
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 10),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),

		// Google Cloud
		ProjectID:             getEnv("PROJECT_ID", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),

		// S3
		AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
	}

	return cfg
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return &ConfigError{Field: "PORT", Message: "PORT must be a number between 1 and 65535"}
	}

	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return &ConfigError{Field: "HTTP_TIMEOUT_SECONDS", Message: "HTTP_TIMEOUT_SECONDS must be positive"}
	}

	// Firestore needs a project to open a client against
	if strings.HasPrefix(c.TaxonomySource, "firestore://") && c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for firestore:// taxonomy sources"}
	}

	// Static credentials come in pairs
	if (c.S3AccessKey == "") != (c.S3SecretKey == "") {
		return &ConfigError{Field: "S3_SECRET_KEY", Message: "S3_ACCESS_KEY and S3_SECRET_KEY must be set together"}
	}

	return nil
}

// MaxUploadBytes returns the multipart upload cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
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

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
