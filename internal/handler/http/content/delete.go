package content

import (
	"net/http"

	"copycraft/internal/handler/http/pathutil"
	"copycraft/internal/handler/http/respond"
	contentUC "copycraft/internal/usecase/content"
)

type DeleteHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ削除
// @Summary      コンテンツ削除
// @Description  コンテンツを削除します（所有者のみ）
// @Tags         contents
// @Security     BearerAuth
// @Param        id path int true "コンテンツID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid content ID"
// @Failure      401 {string} string "Not authorized - not the owner"
// @Failure      404 {string} string "Not found - content not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, userID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
