package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// timeoutWriter wraps the response writer so a handler that outlives the
// deadline cannot write on top of the 408 response.
type timeoutWriter struct {
	mu          sync.Mutex
	w           http.ResponseWriter
	timedOut    bool
	wroteHeader bool
}

func (tw *timeoutWriter) Header() http.Header { return tw.w.Header() }

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return
	}
	tw.wroteHeader = true
	tw.w.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	tw.wroteHeader = true
	return tw.w.Write(b)
}

// markTimedOut blocks all further handler writes and reports whether the
// timeout response may still be written.
func (tw *timeoutWriter) markTimedOut() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.timedOut = true
	return !tw.wroteHeader
}

// TimeoutMiddleware adds request timeout to prevent long-running requests
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			tw := &timeoutWriter{w: w}

			// buffered so a handler finishing after the deadline can always
			// complete its send and exit
			done := make(chan struct{}, 1)
			go func() {
				next.ServeHTTP(tw, r)
				done <- struct{}{}
			}()

			select {
			case <-done:
				// Request completed before the deadline
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					zap.S().Warnw("Request timeout",
						"path", r.URL.Path,
						"method", r.Method,
						"timeout", timeout)
					if tw.markTimedOut() {
						w.WriteHeader(http.StatusRequestTimeout)
						w.Write([]byte(`{"error": "Request timeout", "message": "The request took too long to process"}`))
					}
				}
			}
		})
	}
}
