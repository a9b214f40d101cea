package content

import (
	"net/http"

	"copycraft/internal/handler/http/respond"
	contentUC "copycraft/internal/usecase/content"
)

type ListHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ一覧取得
// @Summary      コンテンツ一覧取得
// @Description  認証ユーザーが所有するコンテンツを新しい順に返します
// @Tags         contents
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "コンテンツ一覧"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}

	items, err := h.Svc.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(items))
}

type ListFavoritesHandler struct{ Svc *contentUC.Service }

// ServeHTTP お気に入り一覧取得
// @Summary      お気に入り一覧取得
// @Description  認証ユーザーがお気に入りにしたコンテンツを返します
// @Tags         contents
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "お気に入り一覧"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents/favorites [get]
func (h ListFavoritesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}

	items, err := h.Svc.ListFavorites(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(items))
}
