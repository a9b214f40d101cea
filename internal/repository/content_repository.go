// Package repository defines persistence interfaces for domain entities.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"copycraft/internal/domain/entity"
)

// TypeCount is an aggregation bucket keyed by content type or language.
type TypeCount struct {
	Key   string
	Count int64
}

// UserContentCount pairs a user with the number of records they generated.
type UserContentCount struct {
	UserID int64
	Name   string
	Email  string
	Count  int64
}

// ContentRepository persists generated content records.
//
// Get returns (nil, nil) when no record exists; callers decide whether that
// maps to a not-found error. Mutations operate on a single record keyed by
// ID and are last-write-wins at the row level.
type ContentRepository interface {
	Create(ctx context.Context, c *entity.Content) error
	Get(ctx context.Context, id int64) (*entity.Content, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Content, error)
	ListFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Content, error)
	Update(ctx context.Context, c *entity.Content) error
	Delete(ctx context.Context, id int64) error

	// Aggregations for the admin analytics surface.
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByType(ctx context.Context) ([]TypeCount, error)
	CountByLanguage(ctx context.Context) ([]TypeCount, error)
	TopUsers(ctx context.Context, limit int) ([]UserContentCount, error)
}
