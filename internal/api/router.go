package api

import (
	"beneficiary_registry/internal/auth"       // Credential store and verifier
	"beneficiary_registry/internal/middleware" // Optional token/admin gates

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// RouterConfig carries the handler dependencies
type RouterConfig struct {
	DB          *gorm.DB              // Database handle
	Redis       *redis.Client         // Optional read cache (nil disables)
	Store       auth.CredentialStore  // Credential store strategy
	Verifier    auth.Verifier         // Password verification scheme
	TokenSecret string                // Non-empty enables the bearer-token layer
	RecoveryKey string                // Emergency admin-reset phrase
}

// RegisterRoutes attaches every endpoint to the router. Reference lists are
// reachable both at /api/<list> and /api/settings/<list>, and records are
// aliased at /api/beneficiaries, matching the two client generations.
func RegisterRoutes(r *gin.Engine, cfg RouterConfig) {
	// Liveness probes, with and without the base path
	r.GET("/health", HealthHandler(cfg.DB))

	api := r.Group("/api")
	api.GET("/health", HealthHandler(cfg.DB))

	// Auth routes
	api.POST("/login", LoginHandler(cfg.Store, cfg.TokenSecret))
	api.POST("/change-password", ChangePasswordHandler(cfg.Store))
	api.POST("/admin/reset-password", ResetPasswordHandler(cfg.Store, cfg.RecoveryKey))

	// User management (admin-facing). When the token layer is on, these
	// routes demand an admin bearer token; by default the client-asserted
	// role is trusted, matching the original system.
	users := api.Group("/users")
	if cfg.TokenSecret != "" {
		users.Use(middleware.TokenAuthMiddleware(cfg.TokenSecret), middleware.AdminOnlyMiddleware())
	}
	users.GET("", ListUsersHandler(cfg.DB))
	users.POST("", CreateUserHandler(cfg.DB, cfg.Verifier))
	users.DELETE("/:id", DeleteUserHandler(cfg.DB))

	// Reference lists, registered under both prefixes
	for _, g := range []*gin.RouterGroup{api, api.Group("/settings")} {
		g.GET("/departments", ListDepartmentsHandler(cfg.DB, cfg.Redis))
		g.POST("/departments", CreateDepartmentHandler(cfg.DB, cfg.Redis))
		g.DELETE("/departments/:id", DeleteDepartmentHandler(cfg.DB, cfg.Redis))

		g.GET("/capacities", ListCapacitiesHandler(cfg.DB, cfg.Redis))
		g.POST("/capacities", CreateCapacityHandler(cfg.DB, cfg.Redis))
		g.DELETE("/capacities/:id", DeleteCapacityHandler(cfg.DB, cfg.Redis))

		g.GET("/descriptions", ListDescriptionsHandler(cfg.DB, cfg.Redis))
		g.POST("/descriptions", CreateDescriptionHandler(cfg.DB, cfg.Redis))
		g.DELETE("/descriptions/:id", DeleteDescriptionHandler(cfg.DB, cfg.Redis))

		g.GET("/employees", ListEmployeesHandler(cfg.DB, cfg.Redis))
		g.POST("/employees", CreateEmployeeHandler(cfg.DB, cfg.Redis))
		g.DELETE("/employees/:id", DeleteEmployeeHandler(cfg.DB, cfg.Redis))

		// Variant spellings used by the older client generation
		g.GET("/statuses", ListCapacitiesHandler(cfg.DB, cfg.Redis))
		g.POST("/statuses", CreateCapacityHandler(cfg.DB, cfg.Redis))
		g.DELETE("/statuses/:id", DeleteCapacityHandler(cfg.DB, cfg.Redis))
		g.GET("/reasons", ListDescriptionsHandler(cfg.DB, cfg.Redis))
		g.POST("/reasons", CreateDescriptionHandler(cfg.DB, cfg.Redis))
		g.DELETE("/reasons/:id", DeleteDescriptionHandler(cfg.DB, cfg.Redis))
	}

	// Records, with the legacy /beneficiaries alias
	api.GET("/records", ListRecordsHandler(cfg.DB, "records"))
	api.POST("/records", CreateRecordHandler(cfg.DB, cfg.Redis))
	api.POST("/records/bulk", BulkRecordsHandler(cfg.DB, cfg.Redis))
	api.DELETE("/records/:id", DeleteRecordHandler(cfg.DB, cfg.Redis))
	api.GET("/beneficiaries", ListRecordsHandler(cfg.DB, "beneficiaries"))
	api.POST("/beneficiaries", CreateRecordHandler(cfg.DB, cfg.Redis))

	// Statistics for the admin charts
	api.GET("/statistics", StatisticsHandler(cfg.DB, cfg.Redis))
}
