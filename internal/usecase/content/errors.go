// Package content provides use cases for generating and managing content records.
// It implements the generation pipeline (prompt rendering, upstream call, SEO
// scoring, persistence) and the owner-scoped mutations on stored records.
package content

import "errors"

// Sentinel errors for content use case operations.
var (
	// ErrContentNotFound indicates that the requested content record was not found.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidContentID indicates that the provided content ID is invalid.
	// Content IDs must be positive integers.
	ErrInvalidContentID = errors.New("invalid content ID")

	// ErrNotOwner indicates that the caller is not the owner of the record.
	// It is distinct from ErrContentNotFound: the record exists but belongs
	// to someone else.
	ErrNotOwner = errors.New("not authorized to access this content")
)
