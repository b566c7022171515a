package rate_limiter

import (
	"net/http"
	"strconv"

	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/pkg/middlewares/metrics"
	"ojitos/pkg/logger"
)

// Middleware rejects requests with 429 once the limiter runs out of tokens.
// qps is only echoed in the X-RateLimit-Limit header.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			respond.Error(w, http.StatusTooManyRequests, "demasiadas solicitudes, intente de nuevo en un momento")
		})
	}
}
