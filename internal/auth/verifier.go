package auth

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Verifier abstracts password verification so the storage scheme can be
// swapped without touching call sites. The deployed system stores and
// compares passwords as plaintext; that remains the default scheme for
// behavioral parity and is a known security gap, not an oversight.
type Verifier interface {
	// Verify reports whether supplied matches the stored credential
	Verify(stored, supplied string) bool
	// Hash converts a new plaintext password into its stored form
	Hash(plain string) (string, error)
}

// PlainVerifier compares passwords as plaintext
type PlainVerifier struct{}

// Verify compares the two strings directly
func (PlainVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

// Hash stores the password as-is
func (PlainVerifier) Hash(plain string) (string, error) {
	return plain, nil
}

// BcryptVerifier stores salted bcrypt hashes
type BcryptVerifier struct{}

// Verify compares the supplied password against the stored hash
func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// Hash generates a bcrypt hash for the password
func (BcryptVerifier) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// NewVerifier selects a verification scheme by name ("plain" or "bcrypt").
// Unknown values fall back to plaintext, matching the default deployment.
func NewVerifier(scheme string) Verifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
