// Package postgres implements the repository interfaces on PostgreSQL
// using database/sql.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"copycraft/internal/domain/entity"
	"copycraft/internal/repository"

	"github.com/lib/pq"
)

type ContentRepo struct {
	db Querier
}

func NewContentRepo(db Querier) repository.ContentRepository {
	return &ContentRepo{db: db}
}

func (repo *ContentRepo) Create(ctx context.Context, c *entity.Content) error {
	const query = `
INSERT INTO contents
	   (user_id, content_type, tone, topic, keywords, language, generated_text, seo_score, is_favorite, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		c.UserID, c.ContentType, c.Tone, c.Topic, pq.Array(c.Keywords),
		c.Language, c.GeneratedText, c.SEOScore, c.IsFavorite,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ContentRepo) Get(ctx context.Context, id int64) (*entity.Content, error) {
	const query = `
SELECT id, user_id, content_type, tone, topic, keywords, language, generated_text, seo_score, is_favorite, created_at, updated_at
FROM contents
WHERE id = $1
LIMIT 1`
	var c entity.Content
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.UserID, &c.ContentType, &c.Tone, &c.Topic,
			pq.Array(&c.Keywords), &c.Language, &c.GeneratedText,
			&c.SEOScore, &c.IsFavorite, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &c, nil
}

func (repo *ContentRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Content, error) {
	const query = `
SELECT id, user_id, content_type, tone, topic, keywords, language, generated_text, seo_score, is_favorite, created_at, updated_at
FROM contents
WHERE user_id = $1
ORDER BY created_at DESC`
	return repo.queryContents(ctx, "ListByUser", query, userID)
}

func (repo *ContentRepo) ListFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Content, error) {
	const query = `
SELECT id, user_id, content_type, tone, topic, keywords, language, generated_text, seo_score, is_favorite, created_at, updated_at
FROM contents
WHERE user_id = $1 AND is_favorite = TRUE
ORDER BY created_at DESC`
	return repo.queryContents(ctx, "ListFavoritesByUser", query, userID)
}

func (repo *ContentRepo) queryContents(ctx context.Context, op, query string, args ...any) ([]*entity.Content, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	contents := make([]*entity.Content, 0, 50)
	for rows.Next() {
		var c entity.Content
		if err := rows.Scan(&c.ID, &c.UserID, &c.ContentType, &c.Tone, &c.Topic,
			pq.Array(&c.Keywords), &c.Language, &c.GeneratedText,
			&c.SEOScore, &c.IsFavorite, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		contents = append(contents, &c)
	}
	return contents, rows.Err()
}

func (repo *ContentRepo) Update(ctx context.Context, c *entity.Content) error {
	const query = `
UPDATE contents SET
       content_type   = $1,
       tone           = $2,
       topic          = $3,
       keywords       = $4,
       language       = $5,
       generated_text = $6,
       seo_score      = $7,
       is_favorite    = $8,
       updated_at     = $9
WHERE id = $10`
	res, err := repo.db.ExecContext(ctx, query,
		c.ContentType, c.Tone, c.Topic, pq.Array(c.Keywords),
		c.Language, c.GeneratedText, c.SEOScore, c.IsFavorite,
		c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *ContentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contents WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *ContentRepo) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM contents`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountAll: %w", err)
	}
	return count, nil
}

func (repo *ContentRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM contents WHERE created_at >= $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountSince: %w", err)
	}
	return count, nil
}

func (repo *ContentRepo) CountByType(ctx context.Context) ([]repository.TypeCount, error) {
	const query = `
SELECT content_type, COUNT(*) AS cnt
FROM contents
GROUP BY content_type
ORDER BY cnt DESC`
	return repo.queryCounts(ctx, "CountByType", query)
}

func (repo *ContentRepo) CountByLanguage(ctx context.Context) ([]repository.TypeCount, error) {
	const query = `
SELECT language, COUNT(*) AS cnt
FROM contents
GROUP BY language
ORDER BY cnt DESC`
	return repo.queryCounts(ctx, "CountByLanguage", query)
}

func (repo *ContentRepo) queryCounts(ctx context.Context, op, query string) ([]repository.TypeCount, error) {
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]repository.TypeCount, 0, 10)
	for rows.Next() {
		var tc repository.TypeCount
		if err := rows.Scan(&tc.Key, &tc.Count); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

func (repo *ContentRepo) TopUsers(ctx context.Context, limit int) ([]repository.UserContentCount, error) {
	const query = `
SELECT u.id, u.name, u.email, COUNT(c.id) AS cnt
FROM users u
INNER JOIN contents c ON c.user_id = u.id
GROUP BY u.id, u.name, u.email
ORDER BY cnt DESC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("TopUsers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]repository.UserContentCount, 0, limit)
	for rows.Next() {
		var uc repository.UserContentCount
		if err := rows.Scan(&uc.UserID, &uc.Name, &uc.Email, &uc.Count); err != nil {
			return nil, fmt.Errorf("TopUsers: Scan: %w", err)
		}
		users = append(users, uc)
	}
	return users, rows.Err()
}
