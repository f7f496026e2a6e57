package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// contextKey is unexported so no other package can read or shadow the
// principal id stored in a request context.
type contextKey string

const principalIDKey contextKey = "principalID"

// TokenCookieName is the cookie the GitHub sign-in flow stores the JWT in.
const TokenCookieName = "token"

var errNoToken = errors.New("auth: no token presented")

// RequireAuth enforces authentication on protected routes.
//
// The token is taken from "Authorization: Bearer <jwt>" first, then from the
// "token" HttpOnly cookie. A missing or invalid token ends the request with
// 401; a valid one puts the principal id in the context for the handler.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principalID, err := principalFromRequest(r, tokens)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", `Bearer realm="snack-api"`)
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","message":"valid authentication required"}` + "\n"))
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithPrincipalID(r.Context(), principalID)))
		})
	}
}

// ContextWithPrincipalID returns a copy of ctx carrying the authenticated
// principal id.
func ContextWithPrincipalID(ctx context.Context, principalID int64) context.Context {
	return context.WithValue(ctx, principalIDKey, principalID)
}

// PrincipalIDFromContext returns the authenticated principal id, or
// (0, false) for anonymous requests.
func PrincipalIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(principalIDKey).(int64)
	return id, ok && id > 0
}

func principalFromRequest(r *http.Request, tokens *TokenService) (int64, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return 0, errNoToken
		}
		return tokens.Validate(strings.TrimSpace(token))
	}

	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return 0, errNoToken
	}
	return tokens.Validate(cookie.Value)
}
