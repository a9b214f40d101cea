// Package auth implements account registration and credential verification
// backed by the user repository. Token issuance lives at the HTTP layer;
// this package only answers "who is this" questions.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"copycraft/internal/domain/entity"
	"copycraft/internal/repository"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match. Callers must not distinguish the two cases in
// responses; that would let an attacker enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")

// PasswordPolicy defines the requirements a new password must meet.
type PasswordPolicy struct {
	MinLength     int
	WeakPasswords []string
}

// Validate checks a candidate password against the policy.
func (p PasswordPolicy) Validate(password string) error {
	if len(password) < p.MinLength {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", p.MinLength),
		}
	}
	lower := strings.ToLower(password)
	for _, weak := range p.WeakPasswords {
		if lower == weak {
			return &entity.ValidationError{Field: "password", Message: "is too common"}
		}
	}
	return nil
}

// AuthService handles account registration and credential verification.
type AuthService struct {
	users  repository.UserRepository
	policy PasswordPolicy
	cost   int
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, policy PasswordPolicy) *AuthService {
	return &AuthService{users: users, policy: policy, cost: bcrypt.DefaultCost}
}

// Register creates a new account. The password is hashed with bcrypt; the
// plain text is never stored. The first registered account becomes an admin
// so a fresh deployment is administrable without manual DB edits.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := s.policy.Validate(password); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	u := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      count == 0,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies an email/password pair and returns the account on
// success. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}
	if u == nil {
		// Burn a hash comparison anyway so response timing does not
		// reveal whether the email exists.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			[]byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetUser returns the account for the given ID, or (nil, nil) when it no
// longer exists.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}
	return u, nil
}
