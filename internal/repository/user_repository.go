package repository

import (
	"context"

	"copycraft/internal/domain/entity"
)

// UserRepository persists user accounts.
//
// GetByEmail and GetByID return (nil, nil) when no user exists.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
