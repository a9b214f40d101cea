// Package content provides HTTP handlers for content generation and
// management endpoints. All routes operate on records owned by the
// authenticated caller.
package content

import (
	"errors"
	"net/http"
	"time"

	"copycraft/internal/domain/entity"
	"copycraft/internal/handler/http/auth"
	"copycraft/internal/handler/http/respond"
	"copycraft/internal/infra/generator"
	contentUC "copycraft/internal/usecase/content"
)

// DTO represents the JSON structure for content data transfer.
type DTO struct {
	ID            int64     `json:"id" example:"1"`
	UserID        int64     `json:"userId" example:"1"`
	ContentType   string    `json:"contentType" example:"Blog"`
	Tone          string    `json:"tone" example:"Friendly"`
	Topic         string    `json:"topic" example:"cold brew coffee"`
	Keywords      []string  `json:"keywords" example:"coffee,brew"`
	Language      string    `json:"language" example:"English"`
	GeneratedText string    `json:"generatedText" example:"Cold brew is..."`
	SEOScore      int       `json:"seoScore" example:"80"`
	IsFavorite    bool      `json:"isFavorite" example:"false"`
	CreatedAt     time.Time `json:"createdAt" example:"2025-10-26T12:00:00Z"`
	UpdatedAt     time.Time `json:"updatedAt" example:"2025-10-26T12:00:00Z"`
}

func toDTO(c *entity.Content) DTO {
	return DTO{
		ID:            c.ID,
		UserID:        c.UserID,
		ContentType:   c.ContentType,
		Tone:          c.Tone,
		Topic:         c.Topic,
		Keywords:      c.Keywords,
		Language:      c.Language,
		GeneratedText: c.GeneratedText,
		SEOScore:      c.SEOScore,
		IsFavorite:    c.IsFavorite,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toDTOs(items []*entity.Content) []DTO {
	out := make([]DTO, 0, len(items))
	for _, c := range items {
		out = append(out, toDTO(c))
	}
	return out
}

// caller extracts the authenticated user ID, writing a 401 when the
// middleware did not attach one.
func caller(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return 0, false
	}
	return ident.UserID, true
}

// writeServiceError maps use case errors to HTTP status codes.
//
// Ownership violations map to 401, not 403, so a caller probing other
// users' IDs cannot tell a foreign record from a missing token.
// Upstream generation failures surface as 502 with the provider's message.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	var gerr *generator.GenerationError
	switch {
	case errors.As(err, &verr):
		respond.SafeError(w, http.StatusBadRequest, verr)
	case errors.Is(err, contentUC.ErrInvalidContentID):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, contentUC.ErrContentNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, contentUC.ErrNotOwner):
		respond.Error(w, http.StatusUnauthorized, errors.New("not authorized to access this content"))
	case errors.As(err, &gerr):
		respond.Error(w, http.StatusBadGateway, gerr)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
