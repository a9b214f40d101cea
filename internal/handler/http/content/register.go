package content

import (
	"net/http"

	"copycraft/internal/handler/http/auth"
	contentUC "copycraft/internal/usecase/content"
)

// Register registers all content-related HTTP handlers with the given mux.
// Every route requires authentication; ownership is enforced in the use case.
func Register(mux *http.ServeMux, svc *contentUC.Service) {
	mux.Handle("POST /contents/generate", auth.Authz(GenerateHandler{svc}))

	mux.Handle("GET /contents", auth.Authz(ListHandler{svc}))
	mux.Handle("GET /contents/favorites", auth.Authz(ListFavoritesHandler{svc}))

	mux.Handle("GET /contents/{id}", auth.Authz(GetHandler{svc}))
	mux.Handle("PUT /contents/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /contents/{id}", auth.Authz(DeleteHandler{svc}))

	mux.Handle("PUT /contents/{id}/favorite", auth.Authz(ToggleFavoriteHandler{svc}))
	mux.Handle("GET /contents/{id}/html", auth.Authz(HTMLHandler{svc}))
}
