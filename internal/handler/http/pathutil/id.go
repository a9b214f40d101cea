// Package pathutil provides helpers for working with URL paths in HTTP handlers.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path segment as a positive int64 ID.
// Handlers pass the value of a {id} route wildcard.
//
// Example:
//
//	id, err := pathutil.ParseID(r.PathValue("id"))
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
