// Package requestid tags every inbound request with a unique id, echoed in
// the response and attached to log events, so one request's upstream calls
// can be correlated.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Request-Id"

type ctxKey struct{}

// Middleware assigns a v4 UUID to the request and logs the request line.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(HeaderName, id)

		log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Msg("request")

		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// WithID stores a request id on the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id, or "" when the middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
