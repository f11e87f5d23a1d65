package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single admin account. The password is hashed at
// construction so the plaintext never outlives boot. No session or token is
// derived from a successful check; the login endpoint only answers yes or no.
type Credentials struct {
	username     string
	passwordHash []byte
}

// NewCredentials hashes the configured password with bcrypt.
func NewCredentials(username, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Credentials{username: username, passwordHash: hash}, nil
}

// Verify reports whether the pair matches the configured account exactly,
// case-sensitively.
func (c *Credentials) Verify(username, password string) bool {
	usernameOK := subtle.ConstantTimeCompare([]byte(c.username), []byte(username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	return usernameOK && passwordOK
}
