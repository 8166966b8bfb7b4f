package server

import (
	"crypto/subtle"
	"net/http"
)

// admin hides the wrapped handler behind a key sent in the X-Admin-Key
// header. Without a configured key every request passes.
type admin struct {
	key             string
	notFoundHandler http.Handler
}

func newAdmin(key string, notFoundHandler http.Handler) *admin {
	return &admin{
		key:             key,
		notFoundHandler: notFoundHandler,
	}
}

func (a *admin) middleware(next http.Handler) http.Handler {
	if a.key == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if k := r.Header.Get("X-Admin-Key"); subtle.ConstantTimeCompare([]byte(k), []byte(a.key)) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		a.notFoundHandler.ServeHTTP(w, r)
	})
}
