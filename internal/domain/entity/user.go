package entity

import (
	"strings"
	"time"
)

// User represents a registered account in the system.
// PasswordHash holds a bcrypt hash, never the plain password.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Validate validates the User entity fields.
func (u *User) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.PasswordHash == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}
	return nil
}

// maxEmailLength bounds email input to keep index keys small.
const maxEmailLength = 254

// ValidateEmail performs a minimal shape check on an email address.
// Full RFC 5322 validation is deliberately out of scope; the address is
// only used as a login identifier.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(email) > maxEmailLength {
		return &ValidationError{Field: "email", Message: "is too long"}
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return &ValidationError{Field: "email", Message: "is invalid"}
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return &ValidationError{Field: "email", Message: "is invalid"}
	}
	return nil
}
