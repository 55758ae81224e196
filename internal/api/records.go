package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"beneficiary_registry/internal/domain" // Importing domain models
	"beneficiary_registry/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Request struct for single-record creation. Name, id number, case number
// and department are the required business fields; the rest may be empty.
type RecordRequest struct {
	Day             string `json:"day"`                                  // Weekday label
	Date            string `json:"date"`                                 // Visit date (YYYY-MM-DD)
	BeneficiaryName string `json:"beneficiary_name" binding:"required"`  // Beneficiary full name
	IDNumber        string `json:"id_number" binding:"required"`         // National id number
	PhoneNumber     string `json:"phone_number"`                         // Contact phone
	CaseNumber      string `json:"case_number" binding:"required"`       // Court case number
	Department      string `json:"department" binding:"required"`        // Department snapshot
	Capacity        string `json:"capacity"`                             // Capacity snapshot
	Description     string `json:"description"`                          // Visit reason snapshot
	Employee        string `json:"employee"`                             // Recording employee snapshot
}

// BulkRecord is one row of a bulk import. Validation happens row by row, so
// no binding tags here.
type BulkRecord struct {
	Day             string `json:"day"`              // Weekday label
	Date            string `json:"date"`             // Visit date
	BeneficiaryName string `json:"beneficiary_name"` // Beneficiary full name
	IDNumber        string `json:"id_number"`        // National id number
	PhoneNumber     string `json:"phone_number"`     // Contact phone
	CaseNumber      string `json:"case_number"`      // Court case number
	Department      string `json:"department"`       // Department snapshot
	Capacity        string `json:"capacity"`         // Capacity snapshot
	Description     string `json:"description"`      // Visit reason snapshot
	Employee        string `json:"employee"`         // Recording employee snapshot
}

// Cache key for the unfiltered statistics response; filtered variants rely
// on their TTL alone.
const cacheKeyStatistics = "stats:all"

// now returns the server-side creation timestamp (ISO-8601, UTC)
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// toRecord converts a bulk row into the stored model
func (r BulkRecord) toRecord(createdAt string) domain.Record {
	return domain.Record{
		Day:             r.Day,             // Weekday label
		Date:            r.Date,            // Visit date
		BeneficiaryName: r.BeneficiaryName, // Beneficiary full name
		IDNumber:        r.IDNumber,        // National id number
		PhoneNumber:     r.PhoneNumber,     // Contact phone
		CaseNumber:      r.CaseNumber,      // Court case number
		Department:      r.Department,      // Department snapshot
		Capacity:        r.Capacity,        // Capacity snapshot
		Description:     r.Description,     // Visit reason snapshot
		Employee:        r.Employee,        // Recording employee snapshot
		CreatedAt:       createdAt,         // Server-set timestamp
	}
}

// valid reports whether the bulk row carries all required business fields
func (r BulkRecord) valid() bool {
	return r.BeneficiaryName != "" && r.IDNumber != "" && r.CaseNumber != "" && r.Department != ""
}

// CreateRecordHandler inserts one visit record. Records are insert-only;
// there is no update endpoint by design.
func CreateRecordHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing required business fields
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		record := domain.Record{
			Day:             req.Day,             // Weekday label
			Date:            req.Date,            // Visit date
			BeneficiaryName: req.BeneficiaryName, // Beneficiary full name
			IDNumber:        req.IDNumber,        // National id number
			PhoneNumber:     req.PhoneNumber,     // Contact phone
			CaseNumber:      req.CaseNumber,      // Court case number
			Department:      req.Department,      // Department snapshot
			Capacity:        req.Capacity,        // Capacity snapshot
			Description:     req.Description,     // Visit reason snapshot
			Employee:        req.Employee,        // Recording employee snapshot
			CreatedAt:       now(),               // Server-set timestamp
		}
		if err := db.Create(&record).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"beneficiary": req.BeneficiaryName, // Beneficiary name
				"error":       err.Error(),         // Error message
			}).Error("Record insert failed") // Log insert failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert record"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyStatistics) // Invalidate statistics cache
		c.JSON(http.StatusOK, gin.H{"success": true, "id": record.ID})
	}
}

// BulkRecordsHandler inserts a batch of records in one transaction. Rows
// missing a required business field are skipped; the response reports how
// many rows were written. created_at is server-set for every row.
func BulkRecordsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []BulkRecord // Bind JSON array to slice
		if err := c.ShouldBindJSON(&rows); err != nil || len(rows) == 0 {
			// Empty or non-array body
			c.JSON(http.StatusBadRequest, gin.H{"error": "No records provided"})
			return
		}
		createdAt := now() // One timestamp for the whole batch
		records := make([]domain.Record, 0, len(rows))
		skipped := 0
		for _, r := range rows {
			// Rows without the required business fields are skipped
			if !r.valid() {
				skipped++
				continue
			}
			records = append(records, r.toRecord(createdAt))
		}
		if len(records) > 0 {
			// The valid subset is written all-or-nothing
			err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&records).Error
			})
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"rows":  len(records), // Rows attempted
					"error": err.Error(),  // Error message
				}).Error("Bulk insert failed") // Log bulk failure
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert records"})
				return
			}
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyStatistics) // Invalidate statistics cache
		logrus.WithFields(logrus.Fields{
			"inserted": len(records), // Rows written
			"skipped":  skipped,      // Rows dropped in validation
		}).Info("Bulk insert") // Log bulk result
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(records), "skipped": skipped})
	}
}

// ListRecordsHandler returns records with optional equality/range filters,
// newest first. The response key is parameterized so the /records and
// /beneficiaries aliases keep their historical payload shapes.
func ListRecordsHandler(db *gorm.DB, responseKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&domain.Record{}) // Start building the query
		// Date range bounds are inclusive; both spellings are accepted
		if from := firstQuery(c, "from", "startDate"); from != "" {
			query = query.Where("date >= ?", from) // Filter by start date
		}
		if to := firstQuery(c, "to", "endDate"); to != "" {
			query = query.Where("date <= ?", to) // Filter by end date
		}
		if department := c.Query("department"); department != "" {
			query = query.Where("department = ?", department) // Filter by department
		}
		if capacity := c.Query("capacity"); capacity != "" {
			query = query.Where("capacity = ?", capacity) // Filter by capacity
		}
		if description := c.Query("description"); description != "" {
			query = query.Where("description = ?", description) // Filter by description
		}
		if day := c.Query("day"); day != "" {
			query = query.Where("day = ?", day) // Filter by weekday
		}
		var records []domain.Record // Slice to hold records
		// Newest entries first, so the client never sorts
		if err := query.Order("date desc, created_at desc").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, responseKey: records})
	}
}

// DeleteRecordHandler deletes one record by id. Absent ids succeed with
// zero changes.
func DeleteRecordHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&domain.Record{}) // Delete by primary key
		if res.Error != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, cacheKeyStatistics) // Invalidate statistics cache
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": res.RowsAffected})
	}
}

// firstQuery returns the first non-empty query value among the given names
func firstQuery(c *gin.Context, names ...string) string {
	for _, n := range names {
		if v := c.Query(n); v != "" {
			return v
		}
	}
	return ""
}
