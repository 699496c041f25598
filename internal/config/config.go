package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// S3Config holds connection settings for the S3-compatible object storage backend.
// Endpoint may be given with or without a scheme; a scheme, when present, decides
// whether TLS is used and overrides UseSSL.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
}

// CORSConfig controls cross-origin access to the gateway.
// AllowOrigins is a comma-separated list; the default "*" allows every origin.
type CORSConfig struct {
	AllowOrigins string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port string
	S3   S3Config
	CORS CORSConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8080"), // default only for non-sensitive value
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", ""),
			UseSSL:    getEnvBool("S3_USE_SSL", false),
			Region:    getEnv("S3_REGION", ""),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
	}
}

// Validate checks that every required setting is present.
// The caller should treat a non-nil error as a fatal startup condition.
func (c *AppConfig) Validate() error {
	var missing []string
	if c.S3.AccessKey == "" {
		missing = append(missing, "S3_ACCESS_KEY")
	}
	if c.S3.SecretKey == "" {
		missing = append(missing, "S3_SECRET_KEY")
	}
	if c.S3.Endpoint == "" {
		missing = append(missing, "S3_ENDPOINT")
	}
	if c.S3.Bucket == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Normalize resolves the endpoint into the host[:port] form the storage client
// expects. An https:// or http:// scheme takes precedence over UseSSL.
func (s S3Config) Normalize() (endpoint string, useSSL bool, err error) {
	endpoint = s.Endpoint
	useSSL = s.UseSSL

	if strings.Contains(endpoint, "://") {
		u, perr := url.Parse(endpoint)
		if perr != nil {
			return "", false, fmt.Errorf("parse s3 endpoint: %w", perr)
		}
		switch u.Scheme {
		case "https":
			useSSL = true
		case "http":
			useSSL = false
		default:
			return "", false, fmt.Errorf("unsupported s3 endpoint scheme %q", u.Scheme)
		}
		endpoint = u.Host
	}

	if endpoint == "" {
		return "", false, fmt.Errorf("s3 endpoint has no host")
	}
	return endpoint, useSSL, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
