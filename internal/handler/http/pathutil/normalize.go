package pathutil

import "regexp"

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization for optimal performance.
var pathPatterns = []*PathPattern{
	// Content routes with IDs
	{Pattern: regexp.MustCompile(`^/contents/\d+/favorite$`), Template: "/contents/:id/favorite"},
	{Pattern: regexp.MustCompile(`^/contents/\d+/html$`), Template: "/contents/:id/html"},
	{Pattern: regexp.MustCompile(`^/contents/\d+$`), Template: "/contents/:id"},

	// Admin routes with IDs (if added in the future)
	{Pattern: regexp.MustCompile(`^/admin/users/\d+$`), Template: "/admin/users/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /contents/123) to template format (e.g., /contents/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/contents/123")          // "/contents/:id"
//	NormalizePath("/contents/123/favorite") // "/contents/:id/favorite"
//	NormalizePath("/contents/favorites")    // "/contents/favorites" (unchanged)
//	NormalizePath("/health")                // "/health" (unchanged)
//	NormalizePath("/unknown/path/123")      // "/unknown/path/123" (no match, return original)
func NormalizePath(path string) string {
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
