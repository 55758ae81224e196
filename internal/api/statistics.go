package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"beneficiary_registry/internal/domain" // Importing domain models
	"beneficiary_registry/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// StatGroup is one (department, capacity) bucket of the aggregate query
type StatGroup struct {
	Department string `json:"department"` // Department snapshot value
	Capacity   string `json:"capacity"`   // Capacity snapshot value
	Count      int64  `json:"count"`      // Records in the bucket
}

// StatisticsHandler groups records by (department, capacity) with an
// optional inclusive date range and department filter. The grouping runs in
// one query so it stays correct as record volume grows. The unfiltered
// response is cached; filtered variants hit the database.
func StatisticsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		startDate := firstQuery(c, "startDate", "from") // Range lower bound
		endDate := firstQuery(c, "endDate", "to")       // Range upper bound
		department := c.Query("department")             // Department filter

		ctx := context.Background() // Context for Redis operations
		unfiltered := startDate == "" && endDate == "" && department == ""
		var groups []StatGroup // Aggregate result buckets
		if unfiltered {
			// Try the cached unfiltered response first
			found, err := utils.GetCache(ctx, rdb, cacheKeyStatistics, &groups)
			if err == nil && found {
				c.JSON(http.StatusOK, gin.H{"success": true, "statistics": groups, "cached": true})
				return
			}
		}

		query := db.Model(&domain.Record{}).
			Select("department, capacity, COUNT(*) as count") // Single grouped query
		if startDate != "" {
			query = query.Where("date >= ?", startDate) // Filter by start date
		}
		if endDate != "" {
			query = query.Where("date <= ?", endDate) // Filter by end date
		}
		if department != "" {
			query = query.Where("department = ?", department) // Filter by department
		}
		if err := query.Group("department, capacity").
			Order("department asc, capacity asc").
			Scan(&groups).Error; err != nil {
			// If the aggregate fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
			return
		}
		if groups == nil {
			groups = []StatGroup{} // Empty result, not null
		}
		if unfiltered {
			_ = utils.SetCache(ctx, rdb, cacheKeyStatistics, groups, 60*time.Second) // Cache the buckets
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "statistics": groups, "cached": false})
	}
}
