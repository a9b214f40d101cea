package content

import (
	"encoding/json"
	"net/http"

	"copycraft/internal/handler/http/respond"
	contentUC "copycraft/internal/usecase/content"
)

type GenerateHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ生成
// @Summary      コンテンツ生成
// @Description  指定された条件で文章を生成し、SEO スコアを付けて保存します
// @Tags         contents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body object true "生成条件"
// @Success      201 {object} DTO "生成されたコンテンツ"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      502 {string} string "Bad gateway - generation API failed"
// @Router       /contents/generate [post]
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}

	var req struct {
		ContentType string   `json:"contentType"`
		Tone        string   `json:"tone"`
		Topic       string   `json:"topic"`
		Keywords    []string `json:"keywords"`
		Language    string   `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Generate(r.Context(), contentUC.GenerateInput{
		ContentType: req.ContentType,
		Tone:        req.Tone,
		Topic:       req.Topic,
		Keywords:    req.Keywords,
		Language:    req.Language,
	}, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(c))
}
