package content

import (
	"net/http"

	"copycraft/internal/handler/http/pathutil"
	"copycraft/internal/handler/http/respond"
	contentUC "copycraft/internal/usecase/content"
)

type ToggleFavoriteHandler struct{ Svc *contentUC.Service }

// ServeHTTP お気に入り切り替え
// @Summary      お気に入り切り替え
// @Description  コンテンツのお気に入りフラグを反転します（所有者のみ）
// @Tags         contents
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "コンテンツID"
// @Success      200 {object} DTO "更新後のコンテンツ"
// @Failure      400 {string} string "Bad request - invalid content ID"
// @Failure      401 {string} string "Not authorized - not the owner"
// @Failure      404 {string} string "Not found - content not found"
// @Router       /contents/{id}/favorite [put]
func (h ToggleFavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.ToggleFavorite(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}
