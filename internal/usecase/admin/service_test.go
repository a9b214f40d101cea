package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"copycraft/internal/domain/entity"
	"copycraft/internal/repository"
	adminUC "copycraft/internal/usecase/admin"
)

/* ───────── スタブ実装 ───────── */

type stubContentRepo struct {
	total   int64
	recent  int64
	byType  []repository.TypeCount
	byLang  []repository.TypeCount
	top     []repository.UserContentCount
	err     error
	sinceAt time.Time
}

func (s *stubContentRepo) Create(_ context.Context, _ *entity.Content) error { return s.err }
func (s *stubContentRepo) Get(_ context.Context, _ int64) (*entity.Content, error) {
	return nil, s.err
}
func (s *stubContentRepo) ListByUser(_ context.Context, _ int64) ([]*entity.Content, error) {
	return nil, s.err
}
func (s *stubContentRepo) ListFavoritesByUser(_ context.Context, _ int64) ([]*entity.Content, error) {
	return nil, s.err
}
func (s *stubContentRepo) Update(_ context.Context, _ *entity.Content) error { return s.err }
func (s *stubContentRepo) Delete(_ context.Context, _ int64) error           { return s.err }

func (s *stubContentRepo) CountAll(_ context.Context) (int64, error) { return s.total, s.err }
func (s *stubContentRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	s.sinceAt = since
	return s.recent, s.err
}
func (s *stubContentRepo) CountByType(_ context.Context) ([]repository.TypeCount, error) {
	return s.byType, s.err
}
func (s *stubContentRepo) CountByLanguage(_ context.Context) ([]repository.TypeCount, error) {
	return s.byLang, s.err
}
func (s *stubContentRepo) TopUsers(_ context.Context, limit int) ([]repository.UserContentCount, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.top) {
		return s.top[:limit], nil
	}
	return s.top, nil
}

type stubUserRepo struct {
	users []*entity.User
	err   error
}

func (s *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return s.err }
func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, s.err
}
func (s *stubUserRepo) GetByID(_ context.Context, _ int64) (*entity.User, error) {
	return nil, s.err
}
func (s *stubUserRepo) List(_ context.Context) ([]*entity.User, error) { return s.users, s.err }
func (s *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.users)), s.err
}

/* ───────── 1. Analytics: 集計の合成 ───────── */

func TestService_Analytics(t *testing.T) {
	contents := &stubContentRepo{
		total:  42,
		recent: 5,
		byType: []repository.TypeCount{{Key: "Blog", Count: 30}, {Key: "Ad", Count: 12}},
		byLang: []repository.TypeCount{{Key: "English", Count: 40}, {Key: "Spanish", Count: 2}},
		top:    []repository.UserContentCount{{UserID: 1, Name: "a", Email: "a@example.com", Count: 20}},
	}
	users := &stubUserRepo{users: []*entity.User{{ID: 1}, {ID: 2}, {ID: 3}}}

	svc := adminUC.Service{Contents: contents, Users: users}

	got, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics err=%v", err)
	}
	if got.UserCount != 3 {
		t.Fatalf("user count = %d, want 3", got.UserCount)
	}
	if got.ContentCount != 42 {
		t.Fatalf("content count = %d, want 42", got.ContentCount)
	}
	if got.RecentContent != 5 {
		t.Fatalf("recent = %d, want 5", got.RecentContent)
	}
	if len(got.ContentByType) != 2 || got.ContentByType[0].Key != "Blog" {
		t.Fatalf("byType = %#v", got.ContentByType)
	}
	if len(got.TopUsers) != 1 || got.TopUsers[0].Count != 20 {
		t.Fatalf("topUsers = %#v", got.TopUsers)
	}

	// 直近7日間を起点にカウントしていること
	wantSince := time.Now().Add(-7 * 24 * time.Hour)
	if diff := contents.sinceAt.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("since = %v, want ~%v", contents.sinceAt, wantSince)
	}
}

/* ───────── 2. Analytics: 集計失敗は全体エラー ───────── */

func TestService_Analytics_queryError(t *testing.T) {
	contents := &stubContentRepo{err: errors.New("db down")}
	users := &stubUserRepo{}

	svc := adminUC.Service{Contents: contents, Users: users}

	if _, err := svc.Analytics(context.Background()); err == nil {
		t.Fatalf("want error, got nil")
	}
}

/* ───────── 3. ListUsers: ハッシュを返さない ───────── */

func TestService_ListUsers_stripsHashes(t *testing.T) {
	users := &stubUserRepo{users: []*entity.User{
		{ID: 1, Name: "a", Email: "a@example.com", PasswordHash: "$2a$10$secret"},
	}}

	svc := adminUC.Service{Contents: &stubContentRepo{}, Users: users}

	got, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 user, got %d", len(got))
	}
	if got[0].PasswordHash != "" {
		t.Fatalf("password hash leaked: %q", got[0].PasswordHash)
	}
}
