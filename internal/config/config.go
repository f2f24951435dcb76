package config

import (
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration for the token boundary with the external sign-in layer
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
}

// Ledger configuration governs hour-accounting behavior knobs
type LedgerConfig struct {
	// FallbackDepartment is the department newly provisioned users land in.
	FallbackDepartment string
	// LeaderboardSize caps the per-department leaderboard length.
	LeaderboardSize int
	// ApprovalResetOnEdit clears the approved flag whenever a task's name or
	// hours change. The legacy behavior keeps approval across edits.
	ApprovalResetOnEdit bool
}

// Config holds all application configuration
type Config struct {
	Server                  ServerConfig
	Mongo                   MongoConfig
	Auth                    AuthConfig
	Ledger                  LedgerConfig
	ReportKeyCacheTTLSecond int
}

// Default configuration values
const (
	DefaultServerPort         = "5000"
	DefaultServerHost         = ""
	DefaultServerEnv          = "development"
	DefaultMongoURI           = "mongodb://localhost:27017/hour-tracking"
	DefaultMongoDB            = "hour-tracking"
	DefaultJWTSecret          = "your_jwt_secret"
	DefaultTokenTTLMinutes    = 60
	DefaultFallbackDepartment = "No Department"
	DefaultLeaderboardSize    = 5
	DefaultReportKeyCacheTTL  = 3600 // 1 hour
)

// New returns a new Config with values from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
			Env:  getEnv("APP_ENV", DefaultServerEnv),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", DefaultTokenTTLMinutes),
		},
		Ledger: LedgerConfig{
			FallbackDepartment:  getEnv("FALLBACK_DEPARTMENT_NAME", DefaultFallbackDepartment),
			LeaderboardSize:     getEnvInt("LEADERBOARD_SIZE", DefaultLeaderboardSize),
			ApprovalResetOnEdit: getEnvBool("APPROVAL_RESET_ON_EDIT", false),
		},
		ReportKeyCacheTTLSecond: getEnvInt("REPORT_KEY_CACHE_TTL_SECONDS", DefaultReportKeyCacheTTL),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
