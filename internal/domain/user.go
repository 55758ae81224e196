package domain

// Role values allowed on a User
const (
	RoleAdmin    = "admin"    // Manages users, reference lists and all data
	RoleEmployee = "employee" // Data entry only
)

// User Model (admin and data-entry accounts)
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Username string `gorm:"unique;not null" json:"username"` // Unique username
	Password string `gorm:"not null" json:"-"`               // Plaintext by default; see auth.Verifier
	Role     string `gorm:"default:employee" json:"role"`    // Role: admin or employee
}

// ValidRole reports whether r is one of the two supported roles
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEmployee
}
