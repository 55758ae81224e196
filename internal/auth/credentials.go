package auth

import (
	"errors" // Sentinel errors

	"beneficiary_registry/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// DefaultAdminPassword is what the emergency reset restores
const DefaultAdminPassword = "1234"

// ErrUnauthorized is returned when the credentials do not match
var ErrUnauthorized = errors.New("invalid credentials")

// Identity is the authenticated principal reported back to the client.
// No token is attached here; the client remembers identity and role itself.
type Identity struct {
	ID   uint   `json:"id"`   // Row id of the matched account
	Name string `json:"name"` // Login/display name
	Role string `json:"role"` // admin or employee
}

// CredentialStore verifies submitted credentials and manages passwords.
// Two interchangeable strategies exist: SplitStore keys the admin by the
// fixed "admin" users row and employees by the employees table (the
// original behavior), UnifiedStore keys everyone by username+role in the
// users table. Selected by configuration.
type CredentialStore interface {
	Authenticate(username, password, role string) (*Identity, error)
	ChangePassword(username, oldPassword, newPassword, role string) error
	ResetAdminPassword() (int64, error)
}

// NewStore selects a credential-store strategy by mode ("split" or
// "unified"). Unknown values fall back to split, the original scheme.
func NewStore(mode string, db *gorm.DB, v Verifier) CredentialStore {
	if mode == "unified" {
		return &UnifiedStore{DB: db, Verifier: v}
	}
	return &SplitStore{DB: db, Verifier: v}
}

// SplitStore reproduces the original asymmetry: admin login always checks
// the users row named "admin" regardless of the submitted username, while
// employees are matched by name in the employees table.
type SplitStore struct {
	DB       *gorm.DB // Database handle
	Verifier Verifier // Password verification scheme
}

// Authenticate verifies a username/password pair for the requested role
func (s *SplitStore) Authenticate(username, password, role string) (*Identity, error) {
	if role == domain.RoleAdmin {
		var user domain.User // The fixed admin row
		if err := s.DB.Where("username = ?", "admin").First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnauthorized
			}
			return nil, err
		}
		if !s.Verifier.Verify(user.Password, password) {
			return nil, ErrUnauthorized
		}
		return &Identity{ID: user.ID, Name: user.Username, Role: domain.RoleAdmin}, nil
	}
	// Employee login is keyed by display name
	var emp domain.Employee
	if err := s.DB.Where("name = ?", username).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !s.Verifier.Verify(emp.Password, password) {
		return nil, ErrUnauthorized
	}
	return &Identity{ID: emp.ID, Name: emp.Name, Role: domain.RoleEmployee}, nil
}

// ChangePassword verifies the old password, then writes the new one
func (s *SplitStore) ChangePassword(username, oldPassword, newPassword, role string) error {
	stored, err := s.Verifier.Hash(newPassword)
	if err != nil {
		return err
	}
	if role == domain.RoleAdmin {
		if _, err := s.Authenticate(username, oldPassword, role); err != nil {
			return err
		}
		return s.DB.Model(&domain.User{}).Where("username = ?", "admin").
			Update("password", stored).Error
	}
	if _, err := s.Authenticate(username, oldPassword, role); err != nil {
		return err
	}
	return s.DB.Model(&domain.Employee{}).Where("name = ?", username).
		Update("password", stored).Error
}

// ResetAdminPassword restores the admin password to the default value
func (s *SplitStore) ResetAdminPassword() (int64, error) {
	stored, err := s.Verifier.Hash(DefaultAdminPassword)
	if err != nil {
		return 0, err
	}
	res := s.DB.Model(&domain.User{}).Where("username = ?", "admin").
		Update("password", stored)
	return res.RowsAffected, res.Error
}

// UnifiedStore treats every account, admin included, as a users row
// matched by username and role.
type UnifiedStore struct {
	DB       *gorm.DB // Database handle
	Verifier Verifier // Password verification scheme
}

// Authenticate verifies a username/password pair for the requested role
func (s *UnifiedStore) Authenticate(username, password, role string) (*Identity, error) {
	var user domain.User
	if err := s.DB.Where("username = ? AND role = ?", username, role).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !s.Verifier.Verify(user.Password, password) {
		return nil, ErrUnauthorized
	}
	return &Identity{ID: user.ID, Name: user.Username, Role: user.Role}, nil
}

// ChangePassword verifies the old password, then writes the new one
func (s *UnifiedStore) ChangePassword(username, oldPassword, newPassword, role string) error {
	if _, err := s.Authenticate(username, oldPassword, role); err != nil {
		return err
	}
	stored, err := s.Verifier.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(&domain.User{}).Where("username = ? AND role = ?", username, role).
		Update("password", stored).Error
}

// ResetAdminPassword restores the admin password to the default value
func (s *UnifiedStore) ResetAdminPassword() (int64, error) {
	stored, err := s.Verifier.Hash(DefaultAdminPassword)
	if err != nil {
		return 0, err
	}
	res := s.DB.Model(&domain.User{}).Where("username = ?", "admin").
		Update("password", stored)
	return res.RowsAffected, res.Error
}
