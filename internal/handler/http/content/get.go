package content

import (
	"net/http"

	"copycraft/internal/handler/http/pathutil"
	"copycraft/internal/handler/http/respond"
	contentUC "copycraft/internal/usecase/content"
)

type GetHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ詳細取得
// @Summary      コンテンツ詳細取得
// @Description  指定された ID のコンテンツを取得します（所有者のみ）
// @Tags         contents
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "コンテンツID"
// @Success      200 {object} DTO "コンテンツ詳細"
// @Failure      400 {string} string "Bad request - invalid content ID"
// @Failure      401 {string} string "Not authorized - not the owner"
// @Failure      404 {string} string "Not found - content not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Get(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}
