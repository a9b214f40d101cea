package content

import (
	"encoding/json"
	"net/http"

	"copycraft/internal/handler/http/pathutil"
	"copycraft/internal/handler/http/respond"
	contentUC "copycraft/internal/usecase/content"
)

type UpdateHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ更新
// @Summary      コンテンツ更新
// @Description  既存のコンテンツを部分更新します（所有者のみ）。指定されなかったフィールドは変更されません
// @Tags         contents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "コンテンツID"
// @Param        content body object true "更新するフィールド"
// @Success      200 {object} DTO "更新後のコンテンツ"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Not authorized - not the owner"
// @Failure      404 {string} string "Not found - content not found"
// @Router       /contents/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		ContentType   *string  `json:"contentType"`
		Tone          *string  `json:"tone"`
		Topic         *string  `json:"topic"`
		Keywords      []string `json:"keywords"`
		Language      *string  `json:"language"`
		GeneratedText *string  `json:"generatedText"`
		SEOScore      *int     `json:"seoScore"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Update(r.Context(), contentUC.UpdateInput{
		ID:            id,
		ContentType:   req.ContentType,
		Tone:          req.Tone,
		Topic:         req.Topic,
		Keywords:      req.Keywords,
		Language:      req.Language,
		GeneratedText: req.GeneratedText,
		SEOScore:      req.SEOScore,
	}, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}
