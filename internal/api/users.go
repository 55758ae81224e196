package api

import (
	"net/http" // HTTP status codes

	"beneficiary_registry/internal/auth"   // Password verification
	"beneficiary_registry/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for user creation
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"` // Unique username
	Password string `json:"password" binding:"required"` // Initial password
	Role     string `json:"role" binding:"required"`     // admin or employee
}

// ListUsersHandler returns all accounts (passwords omitted)
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.User // Slice to hold users
		if err := db.Order("username asc").Find(&users).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": users}) // Return the user list
	}
}

// CreateUserHandler adds a new account with one of the two supported roles
func CreateUserHandler(db *gorm.DB, verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Role is constrained to admin or employee
		if !domain.ValidRole(req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be admin or employee"})
			return
		}
		// Store the password through the configured verification scheme
		stored, err := verifier.Hash(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store password"})
			return
		}
		user := domain.User{Username: req.Username, Password: stored, Role: req.Role}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate username), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"username": user.Username, // New account name
			"role":     user.Role,     // New account role
		}).Info("User created") // Log user creation
		c.JSON(http.StatusOK, gin.H{"success": true, "id": user.ID})
	}
}

// DeleteUserHandler deletes an account by id. Deleting an absent id is a
// success with zero changes.
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&domain.User{}) // Delete by primary key
		if res.Error != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": res.RowsAffected})
	}
}
