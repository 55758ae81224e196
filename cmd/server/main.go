package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"beneficiary_registry/internal/api"    // Custom package for API handlers
	"beneficiary_registry/internal/auth"   // Credential store and verifier
	"beneficiary_registry/internal/config" // Custom package for configuration
	"beneficiary_registry/internal/db"     // Custom package for the database

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the single-file SQLite store
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err) // Fatal error if DB open fails
	}
	// Ensure schema and seed defaults on every start (idempotent)
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client for the optional read cache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Credential store strategy and password scheme come from configuration
	verifier := auth.NewVerifier(cfg.PasswordScheme)
	store := auth.NewStore(cfg.AuthMode, database, verifier)

	// Token layer is additive and off by default
	tokenSecret := ""
	if cfg.TokenEnabled {
		tokenSecret = cfg.TokenSecret
	}

	api.RegisterRoutes(r, api.RouterConfig{
		DB:          database,        // Database handle
		Redis:       redisClient,     // Optional read cache
		Store:       store,           // Credential store strategy
		Verifier:    verifier,        // Password verification scheme
		TokenSecret: tokenSecret,     // Bearer-token layer (empty = off)
		RecoveryKey: cfg.RecoveryKey, // Emergency reset phrase
	})

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
