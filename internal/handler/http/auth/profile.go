package auth

import (
	"errors"
	"net/http"
	"time"

	"copycraft/internal/handler/http/respond"
	authservice "copycraft/internal/service/auth"
)

type profileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileHandler returns the account of the authenticated caller.
//
// @Summary      プロフィール取得
// @Description  認証済みユーザー自身のアカウント情報を返します
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} profileResponse "アカウント情報"
// @Failure      401 {string} string "認証が必要"
// @Failure      404 {string} string "アカウントが存在しない"
// @Router       /auth/profile [get]
func ProfileHandler(authService *authservice.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok {
			respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
			return
		}

		user, err := authService.GetUser(r.Context(), ident.UserID)
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		if user == nil {
			// Token outlived the account.
			respond.SafeError(w, http.StatusNotFound, errors.New("account not found"))
			return
		}

		respond.JSON(w, http.StatusOK, profileResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		})
	}
}
