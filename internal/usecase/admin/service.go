// Package admin provides aggregate analytics and user listing for
// administrator accounts. Authorization (admin-only access) is enforced at
// the HTTP layer; this package assumes the caller is already vetted.
package admin

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"copycraft/internal/domain/entity"
	"copycraft/internal/observability/metrics"
	"copycraft/internal/repository"
)

// recentWindow is the lookback period for the "recent content" count.
const recentWindow = 7 * 24 * time.Hour

// topUserLimit caps the most-active-users ranking.
const topUserLimit = 5

// Analytics is a point-in-time snapshot of platform activity.
type Analytics struct {
	UserCount         int64
	ContentCount      int64
	ContentByType     []repository.TypeCount
	ContentByLanguage []repository.TypeCount
	RecentContent     int64
	TopUsers          []repository.UserContentCount
}

// Service provides admin-only aggregate queries.
type Service struct {
	Contents repository.ContentRepository
	Users    repository.UserRepository
}

// Analytics gathers the six aggregate queries concurrently and returns a
// snapshot. Any single query failure fails the whole request; a partially
// populated dashboard is worse than an explicit error.
func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	var out Analytics

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		n, err := s.Users.Count(egCtx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		out.UserCount = n
		return nil
	})
	eg.Go(func() error {
		n, err := s.Contents.CountAll(egCtx)
		if err != nil {
			return fmt.Errorf("count contents: %w", err)
		}
		out.ContentCount = n
		return nil
	})
	eg.Go(func() error {
		byType, err := s.Contents.CountByType(egCtx)
		if err != nil {
			return fmt.Errorf("count by type: %w", err)
		}
		out.ContentByType = byType
		return nil
	})
	eg.Go(func() error {
		byLang, err := s.Contents.CountByLanguage(egCtx)
		if err != nil {
			return fmt.Errorf("count by language: %w", err)
		}
		out.ContentByLanguage = byLang
		return nil
	})
	eg.Go(func() error {
		n, err := s.Contents.CountSince(egCtx, time.Now().Add(-recentWindow))
		if err != nil {
			return fmt.Errorf("count recent: %w", err)
		}
		out.RecentContent = n
		return nil
	})
	eg.Go(func() error {
		top, err := s.Contents.TopUsers(egCtx, topUserLimit)
		if err != nil {
			return fmt.Errorf("top users: %w", err)
		}
		out.TopUsers = top
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	metrics.UpdateUsersTotal(out.UserCount)
	metrics.UpdateContentsTotal(out.ContentCount)

	return &out, nil
}

// ListUsers returns all registered users. Password hashes are stripped so
// they never reach a response body.
func (s *Service) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}
