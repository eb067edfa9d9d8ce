package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const sessionTokenKey contextKey = "sessionToken"

// SessionCtx puts the request's session token, if any, into the request context. The token is
// taken from the named cookie, or else from an "Authorization: Bearer" header.
func SessionCtx(cookieName string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionToken returns the session token stored by SessionCtx, or nil if the request carried
// none.
func GetSessionToken(r *http.Request) *string {
	token, ok := r.Context().Value(sessionTokenKey).(string)
	if !ok {
		return nil
	}
	return &token
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	header := r.Header.Get("Authorization")
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}
