package config

import (
	"os"
	"strconv"
	"strings"
)

// Identity store backends selectable through IDENTITY_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendDynamo = "dynamo"
	BackendMemory = "memory"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort      string
	AppEnv       string
	AppAddress   string // public base address shown on the info route
	APITitle     string
	DocsEndpoint string

	NemIDCodeLength     int
	NemIDLength         int
	GeneratedCodeLength int

	// MirrorHTTPStatus makes the transport status follow the result's statusCode
	// instead of always answering 200.
	MirrorHTTPStatus bool
	MaxBodyBytes     int

	IdentityBackend string
	SQLitePath      string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Identities string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:      getEnv("APP_PORT", "8090"),
		AppEnv:       getEnv("APP_ENV", "development"),
		AppAddress:   getEnv("APP_ADDRESS", "http://localhost"),
		APITitle:     getEnv("API_TITLE", "NemId Code Generator"),
		DocsEndpoint: getEnv("DOCS_ENDPOINT", "/docs"),

		NemIDCodeLength:     getEnvInt("NEMID_CODE_LENGTH", 4),
		NemIDLength:         getEnvInt("NEMID_LENGTH", 9),
		GeneratedCodeLength: getEnvInt("GENERATED_CODE_LENGTH", 6),

		MirrorHTTPStatus: getEnvBool("MIRROR_HTTP_STATUS", false),
		MaxBodyBytes:     getEnvInt("MAX_BODY_BYTES", 4096),

		IdentityBackend: strings.ToLower(getEnv("IDENTITY_BACKEND", BackendSQLite)),
		SQLitePath:      getEnv("SQLITE_PATH", "nem_id_database.sqlite"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Identities: getEnv("DYNAMO_TABLE_IDENTITIES", "nemid_identities"),
		},

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// DocsURL is the absolute location of the API documentation.
func (c *Config) DocsURL() string {
	return c.AppAddress + ":" + c.AppPort + c.DocsEndpoint
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
