// Package respond centralizes JSON response writing. Error responses pass
// through a sanitizer so infrastructure failures never leak DSNs, API keys
// or tokens to clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// ヘッダ送信済みのためエラー応答は返せない
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes the error message as a JSON error body without sanitizing.
// Use only with fixed, caller-controlled messages.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeMarkers identify messages produced by this codebase's validation and
// auth paths, which are written for end users. Anything else is assumed to
// be an infrastructure error.
var safeMarkers = []string{
	"validation error",
	"is required",
	"not a valid",
	"cannot be",
	"must be",
	"not found",
	"invalid",
	"unauthorized",
	"forbidden",
	"already registered",
	"too many",
}

// SafeError writes err as a JSON error body if its message is user-facing,
// otherwise logs the sanitized detail and returns a generic message.
// Status codes of 500 and above are always treated as internal.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	safe := false
	if code < 500 {
		lower := strings.ToLower(msg)
		for _, marker := range safeMarkers {
			if strings.Contains(lower, marker) {
				safe = true
				break
			}
		}
	}

	if !safe {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
		JSON(w, code, map[string]string{"error": "internal server error"})
		return
	}

	JSON(w, code, map[string]string{"error": msg})
}
