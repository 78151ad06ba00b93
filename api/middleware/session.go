package middleware

import (
	"net/http"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/internal/session"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/booknest/storefront/pkg/logger"
	"github.com/booknest/storefront/pkg/types"
)

// SessionHeader carries the shopper session id in both directions.
const SessionHeader = types.SessionHeader

type sessionResolver interface {
	Resolve(id string) (*session.Session, bool, error)
}

// Session resolves the shopper session named by X-Session-Id, starting a new
// one when the header is absent or the session has expired, and echoes the
// effective id on the response.
func Session(reg sessionResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if reg == nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session registry unavailable"))
				return
			}

			requested := r.Header.Get(SessionHeader)
			s, created, err := reg.Resolve(requested)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve session"))
				return
			}

			w.Header().Set(SessionHeader, s.ID())
			if logg != nil {
				ctx = logg.WithSessionID(ctx, s.ID())
				if created {
					logg.Info(logg.WithFields(ctx, map[string]any{
						"event":     "session.created",
						"requested": requested,
					}), "shopper session started")
				}
			}
			ctx = WithSession(ctx, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
