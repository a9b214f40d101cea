package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"copycraft/internal/domain/entity"
	"copycraft/internal/repository"
)

type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Create(ctx context.Context, u *entity.User) error {
	const query = `
INSERT INTO users (name, email, password_hash, is_admin, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	err := repo.db.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, name, email, password_hash, is_admin, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return repo.getOne(ctx, "GetByEmail", query, email)
}

func (repo *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, name, email, password_hash, is_admin, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return repo.getOne(ctx, "GetByID", query, id)
}

func (repo *UserRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT id, name, email, password_hash, is_admin, created_at
FROM users
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 50)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
