package content

import (
	"bytes"
	"net/http"

	"github.com/yuin/goldmark"

	"copycraft/internal/handler/http/pathutil"
	"copycraft/internal/handler/http/respond"
	contentUC "copycraft/internal/usecase/content"
)

type HTMLHandler struct{ Svc *contentUC.Service }

// ServeHTTP HTML プレビュー
// @Summary      HTML プレビュー
// @Description  生成テキストを Markdown として HTML に変換して返します（所有者のみ）
// @Tags         contents
// @Security     BearerAuth
// @Produce      html
// @Param        id path int true "コンテンツID"
// @Success      200 {string} string "HTML"
// @Failure      400 {string} string "Bad request - invalid content ID"
// @Failure      401 {string} string "Not authorized - not the owner"
// @Failure      404 {string} string "Not found - content not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents/{id}/html [get]
func (h HTMLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(c.GeneratedText), &buf); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
