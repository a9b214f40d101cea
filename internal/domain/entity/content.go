// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Content and User, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Content represents a generated piece of marketing copy owned by a user.
// Keywords are stored lower-cased; SEOScore is a 0-100 keyword-density heuristic.
type Content struct {
	ID            int64
	UserID        int64
	ContentType   string
	Tone          string
	Topic         string
	Keywords      []string
	Language      string
	GeneratedText string
	SEOScore      int
	IsFavorite    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ContentTypes lists the accepted content_type values.
var ContentTypes = []string{
	"Blog",
	"Ad",
	"Caption",
	"Product Description",
	"Article",
	"Blog Post",
	"Social Media",
	"Email",
}

// Tones lists the accepted tone values.
var Tones = []string{
	"Formal",
	"Friendly",
	"Persuasive",
	"Funny",
	"Professional",
}

// ValidContentType reports whether t is one of the accepted content types.
func ValidContentType(t string) bool {
	for _, v := range ContentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidTone reports whether t is one of the accepted tones.
func ValidTone(t string) bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}

// Validate validates the Content entity fields.
func (c *Content) Validate() error {
	if c.UserID <= 0 {
		return &ValidationError{Field: "userID", Message: "must be positive"}
	}
	if !ValidContentType(c.ContentType) {
		return &ValidationError{Field: "contentType", Message: "is not a valid content type"}
	}
	if !ValidTone(c.Tone) {
		return &ValidationError{Field: "tone", Message: "is not a valid tone"}
	}
	if c.Topic == "" {
		return &ValidationError{Field: "topic", Message: "is required"}
	}
	if len(c.Keywords) == 0 {
		return &ValidationError{Field: "keywords", Message: "is required"}
	}
	if c.Language == "" {
		return &ValidationError{Field: "language", Message: "is required"}
	}
	if c.SEOScore < 0 || c.SEOScore > 100 {
		return &ValidationError{Field: "seoScore", Message: "must be between 0 and 100"}
	}
	return nil
}
