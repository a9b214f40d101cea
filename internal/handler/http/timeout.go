package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that aborts requests running longer than d
// with a 504. The budget covers the generation call, which is the slowest
// path in the system. The handler keeps running with a cancelled context;
// its late writes are swallowed so the client sees exactly one response.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			gw := &guardedWriter{ResponseWriter: w}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				gw.abort()
			}
		})
	}
}

// guardedWriter lets exactly one side produce the response: the handler,
// or the timeout path via abort.
type guardedWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	aborted bool
	wrote   bool
}

func (g *guardedWriter) WriteHeader(code int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.aborted || g.wrote {
		return
	}
	g.wrote = true
	g.ResponseWriter.WriteHeader(code)
}

func (g *guardedWriter) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.aborted {
		return 0, http.ErrHandlerTimeout
	}
	if !g.wrote {
		g.wrote = true
		g.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return g.ResponseWriter.Write(p)
}

func (g *guardedWriter) abort() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.aborted = true
	if g.wrote {
		return
	}
	g.ResponseWriter.Header().Set("Content-Type", "application/json")
	g.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	_, _ = g.ResponseWriter.Write([]byte(`{"error":"request timeout"}`))
}
