package server

import (
	"net/http"
	"slices"
)

// defaultHeaders are set on every response unless overridden in config.
var defaultHeaders = map[string]string{
	"X-Robots-Tag":           "noindex, nofollow",
	"Cache-Control":          "no-store",
	"X-Content-Type-Options": "nosniff",
}

// responseHeaders applies extra over defaultHeaders.
// An empty value drops the header.
func responseHeaders(extra map[string]string) http.Header {
	h := http.Header{}
	for k, v := range defaultHeaders {
		h.Set(k, v)
	}
	for k, v := range extra {
		if v == "" {
			h.Del(k)
			continue
		}
		h.Set(k, v)
	}
	return h
}

func headersMiddleware(headers http.Header, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dst := w.Header()
		for k, v := range headers {
			dst[k] = slices.Clone(v)
		}
		next.ServeHTTP(w, r)
	})
}
