package content

import (
	"context"
	"fmt"
	"time"

	"copycraft/internal/domain/entity"
	"copycraft/internal/infra/generator"
	"copycraft/internal/observability/metrics"
	"copycraft/internal/repository"
	"copycraft/internal/utils/seo"
)

// GenerateInput represents the input parameters for generating new content.
// All fields are required; requests with any field absent are rejected before
// the external API is called.
type GenerateInput struct {
	ContentType string
	Tone        string
	Topic       string
	Keywords    []string
	Language    string
}

// UpdateInput represents the input parameters for updating an existing record.
// Fields with nil values will not be updated. The record owner is never
// updatable.
type UpdateInput struct {
	ID            int64
	ContentType   *string
	Tone          *string
	Topic         *string
	Keywords      []string
	Language      *string
	GeneratedText *string
	SEOScore      *int
}

// Service provides content generation and management use cases.
// It delegates persistence to the repository and the upstream model call to
// the generator.
type Service struct {
	Repo      repository.ContentRepository
	Generator generator.Generator
}

// Generate runs the full generation pipeline for the calling user:
// validate, render the prompt, call the generation API once, score the
// response, and persist the record with callerID as owner.
//
// The upstream call is never retried, cached, or deduplicated. There is also
// no recovery path between a successful generation and a failed save; the
// record either exists with its score or not at all.
func (s *Service) Generate(ctx context.Context, in GenerateInput, callerID int64) (*entity.Content, error) {
	if err := validateGenerateInput(in); err != nil {
		return nil, err
	}

	system := BuildSystemInstruction(in.Language)
	prompt := BuildPrompt(in)

	text, err := s.Generator.Generate(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	result := seo.Score(text, in.Keywords)

	now := time.Now()
	c := &entity.Content{
		UserID:        callerID,
		ContentType:   in.ContentType,
		Tone:          in.Tone,
		Topic:         in.Topic,
		Keywords:      seo.NormalizeKeywords(in.Keywords),
		Language:      in.Language,
		GeneratedText: text,
		SEOScore:      result.Score,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	metrics.RecordContentGenerated(in.ContentType, in.Language)
	metrics.ObserveSEOScore(result.Score)

	return c, nil
}

// validateGenerateInput checks field presence first, then enum membership,
// so a missing field is reported as such rather than as an invalid value.
func validateGenerateInput(in GenerateInput) error {
	if in.ContentType == "" {
		return &entity.ValidationError{Field: "contentType", Message: "is required"}
	}
	if in.Tone == "" {
		return &entity.ValidationError{Field: "tone", Message: "is required"}
	}
	if in.Topic == "" {
		return &entity.ValidationError{Field: "topic", Message: "is required"}
	}
	if len(in.Keywords) == 0 {
		return &entity.ValidationError{Field: "keywords", Message: "is required"}
	}
	if in.Language == "" {
		return &entity.ValidationError{Field: "language", Message: "is required"}
	}
	if !entity.ValidContentType(in.ContentType) {
		return &entity.ValidationError{Field: "contentType", Message: "is not a valid content type"}
	}
	if !entity.ValidTone(in.Tone) {
		return &entity.ValidationError{Field: "tone", Message: "is not a valid tone"}
	}
	return nil
}

// authorize fetches a record and checks record ownership in one place.
//
// The result is deliberately three-valued: ErrContentNotFound when no record
// exists, ErrNotOwner when it exists but belongs to someone else, nil
// otherwise. Callers map these to distinct HTTP statuses (404 vs 401).
func (s *Service) authorize(ctx context.Context, id, callerID int64) (*entity.Content, error) {
	if id <= 0 {
		return nil, ErrInvalidContentID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	if c == nil {
		return nil, ErrContentNotFound
	}
	if c.UserID != callerID {
		return nil, ErrNotOwner
	}
	return c, nil
}

// Get retrieves a single record, owner-checked.
func (s *Service) Get(ctx context.Context, id, callerID int64) (*entity.Content, error) {
	return s.authorize(ctx, id, callerID)
}

// List retrieves all records owned by the caller, newest first.
func (s *Service) List(ctx context.Context, callerID int64) ([]*entity.Content, error) {
	items, err := s.Repo.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return items, nil
}

// ListFavorites retrieves the caller's favorited records, newest first.
func (s *Service) ListFavorites(ctx context.Context, callerID int64) ([]*entity.Content, error) {
	items, err := s.Repo.ListFavoritesByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return items, nil
}

// Update applies a partial update to a record owned by the caller.
// Only non-nil fields in the input are written; everything else keeps its
// previous value. The owner is never changed.
func (s *Service) Update(ctx context.Context, in UpdateInput, callerID int64) (*entity.Content, error) {
	c, err := s.authorize(ctx, in.ID, callerID)
	if err != nil {
		return nil, err
	}

	if in.ContentType != nil {
		if !entity.ValidContentType(*in.ContentType) {
			return nil, &entity.ValidationError{Field: "contentType", Message: "is not a valid content type"}
		}
		c.ContentType = *in.ContentType
	}
	if in.Tone != nil {
		if !entity.ValidTone(*in.Tone) {
			return nil, &entity.ValidationError{Field: "tone", Message: "is not a valid tone"}
		}
		c.Tone = *in.Tone
	}
	if in.Topic != nil {
		if *in.Topic == "" {
			return nil, &entity.ValidationError{Field: "topic", Message: "cannot be empty"}
		}
		c.Topic = *in.Topic
	}
	if in.Keywords != nil {
		if len(in.Keywords) == 0 {
			return nil, &entity.ValidationError{Field: "keywords", Message: "cannot be empty"}
		}
		c.Keywords = seo.NormalizeKeywords(in.Keywords)
	}
	if in.Language != nil {
		if *in.Language == "" {
			return nil, &entity.ValidationError{Field: "language", Message: "cannot be empty"}
		}
		c.Language = *in.Language
	}
	if in.GeneratedText != nil {
		c.GeneratedText = *in.GeneratedText
	}
	if in.SEOScore != nil {
		if *in.SEOScore < 0 || *in.SEOScore > 100 {
			return nil, &entity.ValidationError{Field: "seoScore", Message: "must be between 0 and 100"}
		}
		c.SEOScore = *in.SEOScore
	}

	c.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return c, nil
}

// ToggleFavorite flips the favorite flag on a record owned by the caller and
// returns the updated record.
func (s *Service) ToggleFavorite(ctx context.Context, id, callerID int64) (*entity.Content, error) {
	c, err := s.authorize(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	c.IsFavorite = !c.IsFavorite
	c.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}
	return c, nil
}

// Delete removes a record owned by the caller.
func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	if _, err := s.authorize(ctx, id, callerID); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}
