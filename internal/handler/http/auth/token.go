package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"copycraft/internal/handler/http/requestid"
	"copycraft/internal/observability/metrics"
	authservice "copycraft/internal/service/auth"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry is the lifetime of issued JWT tokens. It can be overridden
// from the security config at startup.
var TokenExpiry = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenHandler creates an HTTP handler that authenticates users and issues JWT tokens.
// It uses the provided AuthService for credential verification.
//
// @Summary      JWT トークン取得
// @Description  メールアドレスとパスワードで認証し、JWT トークンを発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "ログイン情報"
// @Success      200 {object} tokenResponse "JWT トークン"
// @Failure      400 {string} string "リクエストが不正"
// @Failure      401 {string} string "認証失敗"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "トークン生成失敗"
// @Router       /auth/token [post]
func TokenHandler(authService *authservice.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			metrics.RecordAuthAttempt(false)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		user, err := authService.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, authservice.ErrInvalidCredentials) {
				logger.Warn("authentication failed",
					slog.String("reason", "invalid_credentials"),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()))
				metrics.RecordAuthAttempt(false)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			logger.Error("authentication lookup failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			metrics.RecordAuthAttempt(false)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		signed, err := IssueToken(user.ID, user.IsAdmin)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			metrics.RecordAuthAttempt(false)
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.Int64("user_id", user.ID),
			slog.Bool("admin", user.IsAdmin),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		metrics.RecordAuthAttempt(true)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response",
				slog.String("error", err.Error()))
		}
	}
}

// IssueToken signs a JWT for the given account. The subject claim carries
// the user ID; the admin claim gates the /admin surface.
func IssueToken(userID int64, isAdmin bool) (string, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", userID),
		"admin": isAdmin,
		"exp":   time.Now().Add(TokenExpiry).Unix(),
	})
	return token.SignedString(secret)
}
