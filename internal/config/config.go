package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string // Application port
	DBPath         string // Path to the SQLite database file
	AuthMode       string // Credential store mode: split or unified
	PasswordScheme string // Password verification scheme: plain or bcrypt
	TokenEnabled   bool   // Enable the additive bearer-token layer
	TokenSecret    string // Token signing secret (only used when tokens are enabled)
	RecoveryKey    string // Emergency admin-reset shared secret
	RedisAddr      string // Redis server address (empty disables caching)
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	IsProd         bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),               // Application port
		DBPath:         os.Getenv("DB_PATH"),                // SQLite database file
		AuthMode:       os.Getenv("AUTH_MODE"),              // split or unified
		PasswordScheme: os.Getenv("PASSWORD_SCHEME"),        // plain or bcrypt
		TokenEnabled:   os.Getenv("TOKEN_ENABLED") == "true", // Bearer-token layer
		TokenSecret:    os.Getenv("TOKEN_SECRET"),           // Token signing secret
		RecoveryKey:    os.Getenv("RECOVERY_KEY"),           // Emergency reset key
		RedisAddr:      os.Getenv("REDIS_ADDR"),             // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),             // Redis password
		RedisDB:        redisDB,                             // Redis database number
		IsProd:         os.Getenv("IS_PROD") == "true",      // Is production environment
	}
	// Defaults matching the deployed system
	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "beneficiaries.db"
	}
	if cfg.AuthMode == "" {
		cfg.AuthMode = "split"
	}
	if cfg.PasswordScheme == "" {
		cfg.PasswordScheme = "plain"
	}
	if cfg.RecoveryKey == "" {
		// The original system ships this fixed recovery phrase. Override
		// RECOVERY_KEY in production deployments.
		cfg.RecoveryKey = "admin_recovery_2024"
	}
	return cfg
}
