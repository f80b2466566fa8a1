package identity

import (
	"context"
	"errors"
	"strings"

	"redbook/internal/auth"
)

var ErrValidation = errors.New("missing required field")
var ErrDuplicateUsername = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	Store Store
}

type RegisterInput struct {
	Username    string
	Password    string
	Name        string
	AvatarIndex int
}

// Register creates an account. Username, password and name must be non-blank;
// a non-positive avatar index falls back to 1. Passwords are stored as bcrypt
// hashes, never verbatim.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if isBlank(in.Username) || isBlank(in.Password) || isBlank(in.Name) {
		return nil, ErrValidation
	}
	avatar := in.AvatarIndex
	if avatar <= 0 {
		avatar = 1
	}

	// Pre-check so the caller gets a duplicate answer without burning an id.
	// Not atomic against a concurrent register; the unique index catches that.
	existing, err := s.Store.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           NewUserID(),
		Username:     in.Username,
		PasswordHash: hash,
		Name:         in.Name,
		AvatarIndex:  avatar,
		Bio:          "",
	}
	if err := s.Store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate returns the user matching the credentials. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.Store.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !auth.ComparePassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*User, error) {
	return s.Store.FindByID(ctx, id)
}

func (s *Service) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.Store.FindByUsername(ctx, username)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
