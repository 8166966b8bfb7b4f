package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync/atomic"
	"time"

	"magicinc/internal/ctxlog"
)

// tlsLoader serves a certificate pair from disk and picks up renewals.
type tlsLoader struct {
	certFile string
	keyFile  string
	interval time.Duration

	cert atomic.Pointer[tls.Certificate]
}

func newTLSLoader(config TLSConfig) *tlsLoader {
	if config.KeyFile == "" {
		panic("server: tls keyFile is required with certFile")
	}

	t := &tlsLoader{
		certFile: config.CertFile,
		keyFile:  config.KeyFile,
		interval: config.ReloadInterval,
	}

	err := t.load()
	if err != nil {
		panic(fmt.Errorf("server: %w", err))
	}

	return t
}

func (l *tlsLoader) load() error {
	c, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return fmt.Errorf("load tls cert: %w", err)
	}

	l.cert.Store(&c)
	return nil
}

func (l *tlsLoader) config() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		GetCertificate: func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
			return l.cert.Load(), nil
		},
	}
}

// reloadLoop reloads the pair every interval until ctx is done.
// A failed reload keeps serving the previous certificate.
func (l *tlsLoader) reloadLoop(ctx context.Context) {
	if l.interval <= 0 {
		return
	}

	logger := ctxlog.Get(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			err := l.load()
			if err != nil {
				logger.Error("reload tls cert", "error", err)
			} else {
				logger.Info("reloaded tls cert")
			}
		}
	}
}
