package admin

import (
	"net/http"
	"time"

	"copycraft/internal/handler/http/respond"
	adminUC "copycraft/internal/usecase/admin"
)

type userDTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"user@example.com"`
	IsAdmin   bool      `json:"isAdmin" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2025-10-26T12:00:00Z"`
}

type ListUsersHandler struct{ Svc *adminUC.Service }

// ServeHTTP ユーザー一覧取得
// @Summary      ユーザー一覧取得
// @Description  登録済みユーザーの一覧を返します（パスワードハッシュは含まれません）
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} userDTO "ユーザー一覧"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /admin/users [get]
func (h ListUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListUsers(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, userDTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}
