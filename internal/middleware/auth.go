package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lionhard83/sample-server-tests/internal/model"
)

type contextKey string

const identityKey contextKey = "identity"

// AccountVerifier resolves a bearer token to an account's public projection,
// failing when the token is invalid or its subject no longer exists.
type AccountVerifier interface {
	WhoAmI(ctx context.Context, token string) (model.UserResponse, error)
}

// BearerToken extracts the credential from an Authorization header value.
// Both "Bearer <token>" and a bare token are accepted.
func BearerToken(header string) string {
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return token
	}
	return header
}

// Auth returns middleware that gates a route behind a valid bearer token.
// The resolved identity is stored in the request context.
func Auth(accounts AccountVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			identity, err := accounts.WhoAmI(r.Context(), token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "token not valid")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (model.UserResponse, bool) {
	identity, ok := ctx.Value(identityKey).(model.UserResponse)
	return identity, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
