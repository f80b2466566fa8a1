package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the persistence port for User rows. Lookups return (nil, nil)
// when no row matches.
type Store interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// GormStore persists users in Postgres. The unique index on username is the
// backstop for concurrent registrations that both pass the pre-check;
// violations surface as ErrDuplicateUsername.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Create(ctx context.Context, u *User) error {
	err := s.DB.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	return err
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
