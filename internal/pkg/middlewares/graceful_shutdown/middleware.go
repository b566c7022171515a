package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"ojitos/internal/handlers/rest/respond"
)

// Middleware turns new requests away with 503 once shutdown has started and
// the ongoing context is cancelled.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					respond.Error(w, http.StatusServiceUnavailable, "el servicio se está apagando")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
