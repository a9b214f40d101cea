package admin

import (
	"net/http"

	"copycraft/internal/handler/http/auth"
	adminUC "copycraft/internal/usecase/admin"
)

// Register registers the admin-only HTTP handlers with the given mux.
// Every route requires a token whose admin claim is set.
func Register(mux *http.ServeMux, svc *adminUC.Service) {
	mux.Handle("GET /admin/analytics", auth.Authz(auth.RequireAdmin(AnalyticsHandler{svc})))
	mux.Handle("GET /admin/users", auth.Authz(auth.RequireAdmin(ListUsersHandler{svc})))
}
