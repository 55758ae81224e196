package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"beneficiary_registry/internal/auth"  // Credential store and verifier
	"beneficiary_registry/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Role     string `json:"role" binding:"required"`     // Requested role must be provided
}

// Request struct for password change
type ChangePasswordRequest struct {
	Username    string `json:"username" binding:"required"`    // Account to change
	OldPassword string `json:"oldPassword" binding:"required"` // Current password
	NewPassword string `json:"newPassword" binding:"required"` // Replacement password
	Role        string `json:"role" binding:"required"`        // admin or employee
}

// Request struct for the emergency admin reset
type ResetPasswordRequest struct {
	RecoveryKey string `json:"recoveryKey" binding:"required"` // Shared recovery phrase
}

// LoginHandler authenticates a user against the credential store and reports
// the matched identity and role. No session is issued unless the token layer
// is enabled (tokenSecret non-empty); by default the client remembers the
// identity itself and re-sends the role on privileged calls.
func LoginHandler(store auth.CredentialStore, tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "الرجاء إدخال جميع البيانات المطلوبة"})
			return
		}
		// The browser form may carry stray whitespace
		username := strings.TrimSpace(req.Username)
		password := strings.TrimSpace(req.Password)
		identity, err := store.Authenticate(username, password, req.Role)
		if err != nil {
			// Wrong credentials are reported as unauthorized
			if errors.Is(err, auth.ErrUnauthorized) {
				logrus.WithFields(logrus.Fields{
					"username": username, // Submitted username
					"role":     req.Role, // Requested role
				}).Warn("Login failed") // Log failed login
				c.JSON(http.StatusUnauthorized, gin.H{"error": "اسم المستخدم أو كلمة المرور غير صحيحة"})
				return
			}
			// Any other failure is a store error
			logrus.WithFields(logrus.Fields{
				"username": username,    // Submitted username
				"error":    err.Error(), // Error message
			}).Error("Login query failed") // Log store failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في الخادم"})
			return
		}
		resp := gin.H{"success": true, "user": identity} // Authenticated identity
		// Attach a bearer token only when the additive token layer is on
		if tokenSecret != "" {
			token, err := utils.GenerateJWT(identity.Name, identity.Role, tokenSecret)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
				return
			}
			resp["token"] = token
		}
		logrus.WithFields(logrus.Fields{
			"username": identity.Name, // Matched account
			"role":     identity.Role, // Matched role
		}).Info("Login success") // Log successful login
		c.JSON(http.StatusOK, resp)
	}
}

// ChangePasswordHandler rewrites a password after verifying the old one
func ChangePasswordHandler(store auth.CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "جميع الحقول مطلوبة"})
			return
		}
		if err := store.ChangePassword(req.Username, req.OldPassword, req.NewPassword, req.Role); err != nil {
			// Old password mismatch is reported as unauthorized
			if errors.Is(err, auth.ErrUnauthorized) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "كلمة المرور الحالية غير صحيحة"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{
			"username": req.Username, // Account changed
			"role":     req.Role,     // Account role
		}).Info("Password changed") // Log password change
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ResetPasswordHandler is the emergency admin reset. It compares a fixed
// shared recovery phrase and restores the admin password to its default.
// Carried over from the original system; rotate RECOVERY_KEY in production.
func ResetPasswordHandler(store auth.CredentialStore, recoveryKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "مفتاح الاستعادة مطلوب"})
			return
		}
		// The recovery phrase is compared as plaintext
		if req.RecoveryKey != recoveryKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "مفتاح الاستعادة غير صحيح"})
			return
		}
		if _, err := store.ResetAdminPassword(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logrus.Warn("Admin password reset via emergency key") // Log the reset
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "تمت إعادة تعيين كلمة مرور المدير إلى: 1234"})
	}
}
