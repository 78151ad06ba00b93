package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/booknest/storefront/pkg/logger"
	"github.com/booknest/storefront/pkg/types"
)

// RequestIDHeader is echoed on every response.
const RequestIDHeader = types.RequestIDHeader

// RequestID tags the request with a UUID. A caller-supplied id is kept only
// when it parses as a UUID so arbitrary header text never reaches the logs.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if parsed, err := uuid.Parse(reqID); err == nil {
				reqID = parsed.String()
			} else {
				reqID = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
