package middleware

import (
	"context"
	"net/http"

	appsession "github.com/albisatrio/heritage-jakarta-website/internal/heritage/session"
)

type sessionContextKey string

const requestSessionKey sessionContextKey = "heritage.session"

// SessionStore abstracts the session manager for middleware integration.
type SessionStore interface {
	Load(*http.Request) *appsession.Session
	Save(http.ResponseWriter, *appsession.Session) error
}

// Session attaches the decoded session to the request context. Handlers
// that mutate the session must call the store's Save before writing the
// response, since cookies cannot be set after headers are flushed.
func Session(store SessionStore) func(http.Handler) http.Handler {
	if store == nil {
		panic("session store is required")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Load(r)
			ctx := context.WithValue(r.Context(), requestSessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retrieves the session attached to this request.
func SessionFromContext(ctx context.Context) (*appsession.Session, bool) {
	if ctx == nil {
		return nil, false
	}
	sess, ok := ctx.Value(requestSessionKey).(*appsession.Session)
	return sess, ok && sess != nil
}

// NoStore disables caching for authenticated admin pages.
func NoStore() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}
