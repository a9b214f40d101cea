package http

import "net/http"

// Request input limits. Tokens issued by this service are well under 1KB
// and no route nests deeper than /contents/{id}/html, so anything near
// these limits is garbage or an attack.
const (
	maxAuthHeaderLen = 8 << 10
	maxPathLen       = 2 << 10
)

// InputValidation returns middleware that rejects oversized request inputs
// before routing. Body size is enforced separately by LimitRequestBody.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderLen {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"authorization header too large"}`))
				return
			}

			if len(r.URL.Path) > maxPathLen {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestURITooLong)
				_, _ = w.Write([]byte(`{"error":"URI too long"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
