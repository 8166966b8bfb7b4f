package server

import (
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"time"
)

type antidosBucket struct {
	ticker  *time.Ticker
	tickets chan struct{}
}

// antidos spaces out requests from the same host by a ticker period and
// rejects them once maxConcurrent are already waiting or running.
type antidos struct {
	buckets         []antidosBucket
	tooManyRequests http.Handler
}

func newAntidos(buckets int, period time.Duration, maxConcurrent int, tooManyRequests http.Handler) *antidos {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	b := make([]antidosBucket, buckets)
	for i := range buckets {
		b[i] = antidosBucket{
			ticker:  time.NewTicker(period),
			tickets: make(chan struct{}, maxConcurrent),
		}
	}

	return &antidos{
		buckets:         b,
		tooManyRequests: tooManyRequests,
	}
}

func (a *antidos) bucket(r *http.Request) *antidosBucket {
	var bucket int
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		h := fnv.New64()
		io.WriteString(h, host)
		bucket = int(h.Sum64() % uint64(len(a.buckets)))
	}
	return &a.buckets[bucket]
}

func (a *antidos) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := a.bucket(r)

		select {
		case b.tickets <- struct{}{}:
			defer func() { <-b.tickets }()
		default:
			a.tooManyRequests.ServeHTTP(w, r)
			return
		}

		select {
		case <-b.ticker.C:
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
		}
	})
}

func (a *antidos) stop() {
	for _, b := range a.buckets {
		b.ticker.Stop()
	}
}
