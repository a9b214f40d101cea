package postgres_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"

	"copycraft/internal/domain/entity"
	pg "copycraft/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

var contentCols = []string{
	"id", "user_id", "content_type", "tone", "topic",
	"keywords", "language", "generated_text", "seo_score",
	"is_favorite", "created_at", "updated_at",
}

func contentRow(c *entity.Content) *sqlmock.Rows {
	// keywords は TEXT[] なのでワイヤ形式の文字列で返す
	kw := "{" + strings.Join(c.Keywords, ",") + "}"
	return sqlmock.NewRows(contentCols).AddRow(
		c.ID, c.UserID, c.ContentType, c.Tone, c.Topic,
		kw, c.Language, c.GeneratedText, c.SEOScore,
		c.IsFavorite, c.CreatedAt, c.UpdatedAt,
	)
}

func sampleContent() *entity.Content {
	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	return &entity.Content{
		ID: 1, UserID: 7, ContentType: "Blog", Tone: "Friendly",
		Topic: "cold brew", Keywords: []string{"coffee", "brew"},
		Language: "English", GeneratedText: "Cold brew is smooth.",
		SEOScore: 40, IsFavorite: false,
		CreatedAt: now, UpdatedAt: now,
	}
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestContentRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleContent()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(contentRow(want))

	repo := pg.NewContentRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestContentRepo_Get_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(contentCols))

	repo := pg.NewContentRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing row, got %#v", got)
	}
}

/* ─────────────────────────── 2. Create ─────────────────────────── */

func TestContentRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	c := sampleContent()
	c.ID = 0

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contents")).
		WithArgs(c.UserID, c.ContentType, c.Tone, c.Topic, pq.Array(c.Keywords),
			c.Language, c.GeneratedText, c.SEOScore, c.IsFavorite,
			c.CreatedAt, c.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := pg.NewContentRepo(db)
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if c.ID != 5 {
		t.Fatalf("id = %d, want 5", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 3. ListByUser ─────────────────────────── */

func TestContentRepo_ListByUser(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleContent()

	mock.ExpectQuery(regexp.QuoteMeta("FROM contents")).
		WithArgs(int64(7)).
		WillReturnRows(contentRow(want))

	repo := pg.NewContentRepo(db)
	got, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByUser err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 row, got %d", len(got))
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

/* ─────────────────────────── 4. Update ─────────────────────────── */

func TestContentRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	c := sampleContent()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contents SET")).
		WithArgs(c.ContentType, c.Tone, c.Topic, pq.Array(c.Keywords),
			c.Language, c.GeneratedText, c.SEOScore, c.IsFavorite,
			c.UpdatedAt, c.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewContentRepo(db)
	if err := repo.Update(context.Background(), c); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestContentRepo_Update_noRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	c := sampleContent()
	c.ID = 99

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contents SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewContentRepo(db)
	if err := repo.Update(context.Background(), c); err == nil {
		t.Fatalf("want error for missing row")
	}
}

/* ─────────────────────────── 5. Delete ─────────────────────────── */

func TestContentRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contents")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewContentRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

/* ─────────────────────────── 6. 集計 ─────────────────────────── */

func TestContentRepo_CountAll(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contents")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	repo := pg.NewContentRepo(db)
	got, err := repo.CountAll(context.Background())
	if err != nil {
		t.Fatalf("CountAll err=%v", err)
	}
	if got != 42 {
		t.Fatalf("count = %d, want 42", got)
	}
}

func TestContentRepo_CountByType(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY content_type")).
		WillReturnRows(sqlmock.NewRows([]string{"content_type", "cnt"}).
			AddRow("Blog", int64(30)).
			AddRow("Ad", int64(12)))

	repo := pg.NewContentRepo(db)
	got, err := repo.CountByType(context.Background())
	if err != nil {
		t.Fatalf("CountByType err=%v", err)
	}
	if len(got) != 2 || got[0].Key != "Blog" || got[0].Count != 30 {
		t.Fatalf("counts = %#v", got)
	}
}

func TestContentRepo_TopUsers(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INNER JOIN contents")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "cnt"}).
			AddRow(int64(1), "a", "a@example.com", int64(20)))

	repo := pg.NewContentRepo(db)
	got, err := repo.TopUsers(context.Background(), 5)
	if err != nil {
		t.Fatalf("TopUsers err=%v", err)
	}
	if len(got) != 1 || got[0].UserID != 1 || got[0].Count != 20 {
		t.Fatalf("top users = %#v", got)
	}
}
