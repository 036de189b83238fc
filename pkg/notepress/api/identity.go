package api

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"github.com/osliken/notepress/pkg/notepress"
)

type principalCtxKey struct{}

// NewTokenAuth builds the JWT verifier for the identity provider contract.
func NewTokenAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// Identity resolves the calling principal for each request. A request with
// a valid bearer token whose "sub" claim parses as a UUID runs as that
// principal; everything else runs as Anonymous. Missing or bad tokens are
// not an error here — whether anonymity is acceptable is decided per
// operation by the service.
func Identity(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	verifier := jwtauth.Verifier(ja)
	return func(next http.Handler) http.Handler {
		return verifier(resolvePrincipal(next))
	}
}

func resolvePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := notepress.Anonymous()

		token, claims, err := jwtauth.FromContext(r.Context())
		if err == nil && token != nil {
			if sub, ok := claims["sub"].(string); ok {
				if id, parseErr := uuid.Parse(sub); parseErr == nil {
					p = notepress.Principal{ID: id}
					if name, ok := claims["name"].(string); ok {
						p.Name = name
					}
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, p notepress.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// PrincipalFromContext returns the request principal, or Anonymous when the
// identity middleware did not run.
func PrincipalFromContext(ctx context.Context) notepress.Principal {
	if p, ok := ctx.Value(principalCtxKey{}).(notepress.Principal); ok {
		return p
	}
	return notepress.Anonymous()
}
