package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/handlers/respond"
	"github.com/chris/washflow/pkg/identity"
)

// TokenResolver turns a bearer token into an identity.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*identity.Identity, error)
}

// Authenticate resolves the caller when a token is presented and stores the
// identity in the request context. Requests without a token pass through
// anonymously; RequireRole decides whether that is acceptable.
func Authenticate(resolver TokenResolver, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				logger.Info("rejected token", "path", r.URL.Path, "error", err)
				respond.Message(w, http.StatusUnauthorized, "Unauthorized, error verifying token")
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
		}
		return http.HandlerFunc(fn)
	}
}

// RequireRole rejects anonymous callers with 401 and callers holding none of
// roles with 403. With no roles any authenticated caller is accepted.
func RequireRole(roles ...identity.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id, ok := identity.FromContext(r.Context())
			if !ok {
				respond.Message(w, http.StatusUnauthorized, "Access token is required.")
				return
			}
			if len(roles) > 0 && !id.HasRole(roles...) {
				respond.Message(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// RequireScopes enforces the roles an API operation declares as its bearer
// scopes. Operations without security requirements are left open.
func RequireScopes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, ok := r.Context().Value(api.BearerAuthScopes).([]string)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		roles := make([]identity.Role, len(scopes))
		for i, s := range scopes {
			roles[i] = identity.Role(s)
		}
		RequireRole(roles...)(next).ServeHTTP(w, r)
	})
}

// bearerToken reads the Authorization header, falling back to the
// access_token query parameter browsers use when opening a websocket.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, found := strings.Cut(h, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("access_token")
}
