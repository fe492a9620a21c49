package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/token"
)

type tokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

type principalResolver interface {
	Resolve(ctx context.Context, subject string) (model.Principal, error)
}

type contextKey string

const principalContextKey contextKey = "auth_principal"

// AuthMiddleware is the request gate: it turns a bearer token into an
// authenticated Principal on the request context. It fails open to
// anonymous - a missing, malformed, expired or unknown-subject token
// leaves the context empty and the request continues, because whether
// anonymous access is acceptable is the routing policy's call, not the
// gate's. The gate never writes a response.
type AuthMiddleware struct {
	verifier tokenVerifier
	resolver principalResolver
}

func NewAuthMiddleware(verifier tokenVerifier, resolver principalResolver) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, resolver: resolver}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(header[7:]))
		if err != nil {
			slog.Warn("bearer token rejected", "cause", err)
			next.ServeHTTP(w, r)
			return
		}

		principal, err := m.resolver.Resolve(r.Context(), claims.Subject)
		if err != nil {
			slog.Warn("token subject did not resolve", "subject", claims.Subject, "cause", err)
			next.ServeHTTP(w, r)
			return
		}

		// A request is gated at most once; an already-populated context
		// wins over a second pass through the middleware.
		if _, ok := PrincipalFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func PrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(model.Principal)
	return principal, ok
}

// WithPrincipal returns a copy of ctx carrying the given principal.
// Exported for handler tests that bypass the middleware.
func WithPrincipal(ctx context.Context, p model.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}
