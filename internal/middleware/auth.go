package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/model"
)

type ctxKey string

const userKey ctxKey = "user"

// UserResolver looks up the account a verified token belongs to.
type UserResolver interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// Auth gates protected routes. It extracts the bearer token, verifies it and
// resolves the uid to a live user before the handler runs. Every rejection —
// missing header, malformed header, bad or expired token, vanished user —
// produces the same 401 body; only the logged detail differs.
func Auth(issuer *auth.Issuer, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := zerolog.Ctx(r.Context())

			header := r.Header.Get("Authorization")
			if header == "" {
				log.Debug().Msg("auth: no authorization header")
				unauthorized(w)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				log.Debug().Msg("auth: malformed authorization header")
				unauthorized(w)
				return
			}

			uid, err := issuer.Verify(raw)
			if err != nil {
				log.Debug().Err(err).Msg("auth: token rejected")
				unauthorized(w)
				return
			}

			u, err := users.UserByID(r.Context(), uid)
			if err != nil {
				// token verifies but the account is gone
				log.Warn().Err(err).Str("uid", uid).Msg("auth: user not resolvable")
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the user attached by Auth, or nil on unprotected routes.
func UserFrom(ctx context.Context) *model.User {
	u, _ := ctx.Value(userKey).(*model.User)
	return u
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"not authorized"}`))
}
