package auth

import (
	"net/http"

	authservice "copycraft/internal/service/auth"
)

// Register registers the authentication endpoints with the given mux.
// Token issuance and signup are rate limited per client IP; the profile
// endpoint requires a valid token.
func Register(mux *http.ServeMux, svc *authservice.AuthService) {
	mux.Handle("POST /auth/token", RateLimit(TokenHandler(svc)))
	mux.Handle("POST /auth/register", RateLimit(RegisterHandler(svc)))
	mux.Handle("GET /auth/profile", Authz(ProfileHandler(svc)))
}
