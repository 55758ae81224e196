package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"beneficiary_registry/internal/domain" // Importing domain models
	"beneficiary_registry/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Request struct shared by all reference-list create endpoints
type NameRequest struct {
	Name string `json:"name" binding:"required"` // Entry name must be provided
}

// Reference-list cache keys (60s TTL, invalidated on writes)
const (
	cacheKeyDepartments  = "settings:departments"
	cacheKeyCapacities   = "settings:capacities"
	cacheKeyDescriptions = "settings:descriptions"
	cacheKeyEmployees    = "settings:employees"
	settingsCacheTTL     = 60 * time.Second
)

// --- Departments ---

// ListDepartmentsHandler returns all departments ordered by name
func ListDepartmentsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()   // Context for Redis operations
		var rows []domain.Department  // Slice to hold departments
		found, err := utils.GetCache(ctx, rdb, cacheKeyDepartments, &rows)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "departments": rows, "cached": true})
			return
		}
		if err := db.Order("name asc").Find(&rows).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch departments"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKeyDepartments, rows, settingsCacheTTL) // Cache the list
		c.JSON(http.StatusOK, gin.H{"success": true, "departments": rows, "cached": false})
	}
}

// CreateDepartmentHandler adds a department; duplicate names conflict
func CreateDepartmentHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		dept := domain.Department{Name: req.Name}
		if err := db.Create(&dept).Error; err != nil {
			// Unique constraint violation on duplicate names
			c.JSON(http.StatusBadRequest, gin.H{"error": "Department already exists"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyDepartments) // Invalidate list cache
		logrus.WithField("name", dept.Name).Info("Department created")        // Log creation
		c.JSON(http.StatusOK, gin.H{"success": true, "id": dept.ID, "name": dept.Name})
	}
}

// DeleteDepartmentHandler deletes by id; absent ids succeed with zero changes
func DeleteDepartmentHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&domain.Department{}) // Delete by primary key
		if res.Error != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyDepartments) // Invalidate list cache
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": res.RowsAffected})
	}
}

// --- Capacities ---

// ListCapacitiesHandler returns all capacities ordered by name
func ListCapacitiesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var rows []domain.Capacity  // Slice to hold capacities
		found, err := utils.GetCache(ctx, rdb, cacheKeyCapacities, &rows)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "capacities": rows, "cached": true})
			return
		}
		if err := db.Order("name asc").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch capacities"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKeyCapacities, rows, settingsCacheTTL) // Cache the list
		c.JSON(http.StatusOK, gin.H{"success": true, "capacities": rows, "cached": false})
	}
}

// CreateCapacityHandler adds a capacity; duplicate names conflict
func CreateCapacityHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		capacity := domain.Capacity{Name: req.Name}
		if err := db.Create(&capacity).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Capacity already exists"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyCapacities) // Invalidate list cache
		c.JSON(http.StatusOK, gin.H{"success": true, "id": capacity.ID, "name": capacity.Name})
	}
}

// DeleteCapacityHandler deletes by id; absent ids succeed with zero changes
func DeleteCapacityHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&domain.Capacity{}) // Delete by primary key
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyCapacities) // Invalidate list cache
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": res.RowsAffected})
	}
}

// --- Descriptions (visit reasons) ---

// ListDescriptionsHandler returns all descriptions ordered by name
func ListDescriptionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()   // Context for Redis operations
		var rows []domain.Description // Slice to hold descriptions
		found, err := utils.GetCache(ctx, rdb, cacheKeyDescriptions, &rows)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "descriptions": rows, "cached": true})
			return
		}
		if err := db.Order("name asc").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch descriptions"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKeyDescriptions, rows, settingsCacheTTL) // Cache the list
		c.JSON(http.StatusOK, gin.H{"success": true, "descriptions": rows, "cached": false})
	}
}

// CreateDescriptionHandler adds a description; duplicate names conflict
func CreateDescriptionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		desc := domain.Description{Name: req.Name}
		if err := db.Create(&desc).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Description already exists"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyDescriptions) // Invalidate list cache
		c.JSON(http.StatusOK, gin.H{"success": true, "id": desc.ID, "name": desc.Name})
	}
}

// DeleteDescriptionHandler deletes by id; absent ids succeed with zero changes
func DeleteDescriptionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&domain.Description{}) // Delete by primary key
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyDescriptions) // Invalidate list cache
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": res.RowsAffected})
	}
}

// --- Employees ---

// ListEmployeesHandler returns all employees ordered by name
func ListEmployeesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var rows []domain.Employee  // Slice to hold employees
		found, err := utils.GetCache(ctx, rdb, cacheKeyEmployees, &rows)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "employees": rows, "cached": true})
			return
		}
		if err := db.Order("name asc").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKeyEmployees, rows, settingsCacheTTL) // Cache the list
		c.JSON(http.StatusOK, gin.H{"success": true, "employees": rows, "cached": false})
	}
}

// CreateEmployeeHandler adds an employee with the default password
func CreateEmployeeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		// New employees start with the default password and change it later
		emp := domain.Employee{Name: req.Name, Password: domain.DefaultEmployeePassword}
		if err := db.Create(&emp).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Employee already exists"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyEmployees) // Invalidate list cache
		logrus.WithField("name", emp.Name).Info("Employee created")         // Log creation
		c.JSON(http.StatusOK, gin.H{"success": true, "id": emp.ID, "name": emp.Name})
	}
}

// DeleteEmployeeHandler deletes by id; absent ids succeed with zero changes
func DeleteEmployeeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&domain.Employee{}) // Delete by primary key
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyEmployees) // Invalidate list cache
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": res.RowsAffected})
	}
}
