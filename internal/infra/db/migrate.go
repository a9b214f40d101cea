package db

import (
	"database/sql"
	"fmt"
	"strings"

	"copycraft/internal/domain/entity"
)

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            SERIAL PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS contents (
    id             SERIAL PRIMARY KEY,
    user_id        INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    content_type   VARCHAR(30) NOT NULL,
    tone           VARCHAR(30) NOT NULL,
    topic          TEXT NOT NULL,
    keywords       TEXT[] NOT NULL DEFAULT '{}',
    language       VARCHAR(30) NOT NULL,
    generated_text TEXT NOT NULL,
    seo_score      INTEGER NOT NULL DEFAULT 0,
    is_favorite    BOOLEAN NOT NULL DEFAULT FALSE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// パフォーマンス最適化: インデックス追加
	indexes := []string{
		// 所有者別一覧取得用(全クエリで使用)
		`CREATE INDEX IF NOT EXISTS idx_contents_user_id ON contents(user_id)`,
		// ORDER BY created_at DESC で使用
		`CREATE INDEX IF NOT EXISTS idx_contents_created_at ON contents(created_at DESC)`,
		// お気に入り絞り込み用(WHERE is_favorite = TRUE)
		`CREATE INDEX IF NOT EXISTS idx_contents_is_favorite ON contents(user_id) WHERE is_favorite = TRUE`,
		// 管理者分析のタイプ別・言語別集計用
		`CREATE INDEX IF NOT EXISTS idx_contents_content_type ON contents(content_type)`,
		`CREATE INDEX IF NOT EXISTS idx_contents_language ON contents(language)`,
		// ログイン時のメール検索用
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// content_type / tone 制約追加
	// 許可値はドメイン側の定義から生成し、バリデーションとDDLのずれを防ぐ
	constraints := []struct {
		name   string
		column string
		values []string
	}{
		{name: "chk_content_type", column: "content_type", values: entity.ContentTypes},
		{name: "chk_tone", column: "tone", values: entity.Tones},
	}
	for _, c := range constraints {
		stmt := fmt.Sprintf(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = '%s'
    ) THEN
        ALTER TABLE contents ADD CONSTRAINT %s
        CHECK (%s IN (%s));
    END IF;
END $$;
`, c.name, c.name, c.column, quoteValues(c.values))
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// quoteValues renders a SQL string list for an IN (...) clause.
func quoteValues(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS contents CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
