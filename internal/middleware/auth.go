package middleware

import (
	"context"
	"net/http"
	"strings"

	"coursecatalog/internal/api/v1/render"
	"coursecatalog/internal/model"

	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

const IdentityContextKey = contextKey("identity")

// Authenticator resolves an access token into the identity it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*model.Identity, error)
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *model.Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, id)
}

// IdentityFromContext returns the authenticated requester, or nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *model.Identity {
	id, _ := ctx.Value(IdentityContextKey).(*model.Identity)
	return id
}

// AuthMiddleware resolves a bearer token when one is sent. Requests without an
// Authorization header pass through anonymously; a malformed or invalid token
// is rejected even on public routes.
func AuthMiddleware(authn Authenticator, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
				logger.Debug().Msg("Invalid authorization header")
				unauthorized(w, "Invalid Authorization header. Expected 'Bearer <token>'.", "")
				return
			}
			identity, err := authn.Authenticate(r.Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				logger.Debug().Err(err).Msg("Invalid token")
				unauthorized(w, "Given token not valid for any token type", "token_not_valid")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()) == nil {
			unauthorized(w, "Authentication credentials were not provided.", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuthUnlessSafe lets GET, HEAD and OPTIONS through and requires
// authentication for every other method.
func RequireAuthUnlessSafe(next http.Handler) http.Handler {
	protected := RequireAuth(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			protected.ServeHTTP(w, r)
		}
	})
}

func unauthorized(w http.ResponseWriter, msg, code string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	if code != "" {
		render.DetailCode(w, http.StatusUnauthorized, msg, code)
		return
	}
	render.Detail(w, http.StatusUnauthorized, msg)
}
