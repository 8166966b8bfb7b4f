package server

import (
	"net/http"
)

// hostMiddleware redirects requests for any other host to the canonical one.
// GET and HEAD get 301, everything else 308 so the method and body survive.
func hostMiddleware(host string, next http.Handler) http.Handler {
	if host == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Host == host {
			next.ServeHTTP(w, r)
			return
		}

		status := http.StatusPermanentRedirect
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			status = http.StatusMovedPermanently
		}

		w.Header().Set("Location", "//"+host+r.URL.RequestURI())
		w.WriteHeader(status)
	})
}
