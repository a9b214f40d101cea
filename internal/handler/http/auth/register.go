package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"copycraft/internal/domain/entity"
	"copycraft/internal/handler/http/requestid"
	"copycraft/internal/handler/http/respond"
	authservice "copycraft/internal/service/auth"
)

type registerRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"your_password"`
}

type registerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// RegisterHandler creates an HTTP handler that registers a new account and
// returns a JWT so the client is signed in immediately.
//
// @Summary      ユーザー登録
// @Description  新規アカウントを作成し、JWT トークンを発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "登録情報"
// @Success      201 {object} registerResponse "作成されたアカウント"
// @Failure      400 {string} string "リクエストが不正"
// @Failure      409 {string} string "メールアドレスが既に使用されている"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /auth/register [post]
func RegisterHandler(authService *authservice.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		user, err := authService.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			var verr *entity.ValidationError
			switch {
			case errors.As(err, &verr):
				respond.SafeError(w, http.StatusBadRequest, verr)
			case errors.Is(err, authservice.ErrEmailTaken):
				respond.Error(w, http.StatusConflict, authservice.ErrEmailTaken)
			default:
				respond.SafeError(w, http.StatusInternalServerError, err)
			}
			return
		}

		token, err := IssueToken(user.ID, user.IsAdmin)
		if err != nil {
			logger.Error("token generation failed", slog.String("error", err.Error()))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("account registered",
			slog.Int64("user_id", user.ID),
			slog.Bool("admin", user.IsAdmin))

		respond.JSON(w, http.StatusCreated, registerResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Token: token,
		})
	}
}
