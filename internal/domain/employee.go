package domain

// DefaultEmployeePassword is assigned to employees created without a password
const DefaultEmployeePassword = "1234"

// Employee Model (data-entry actors, kept separate from users in split mode)
type Employee struct {
	ID       uint   `gorm:"primaryKey" json:"id"`          // Primary key
	Name     string `gorm:"unique;not null" json:"name"`   // Unique display name, also the login name
	Password string `gorm:"default:1234" json:"-"`         // Plaintext by default; see auth.Verifier
}
