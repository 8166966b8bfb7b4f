// Package server exposes magic increments and stored sequences over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"magicinc/internal/ctxlog"
	"magicinc/internal/magic"
	"magicinc/internal/seqstore"

	"golang.org/x/sync/errgroup"
)

type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
	anti            *antidos
	tls             *tlsLoader
}

func New(config Config) *Server {
	if config.Port == 0 {
		panic("server: port is required")
	}
	if config.AntidosBuckets == 0 {
		panic("server: antidosBuckets is required")
	}
	if config.AntidosPeriod == 0 {
		panic("server: antidosPeriod is required")
	}
	if config.ShutdownTimeout == 0 {
		panic("server: shutdownTimeout is required")
	}

	anti := newAntidos(config.AntidosBuckets, config.AntidosPeriod, config.AntidosMaxConcurrent, tooManyRequestsHandler())
	adm := newAdmin(config.AdminKey, notFoundHandler())

	var tl *tlsLoader
	if config.TLS.CertFile != "" {
		tl = newTLSLoader(config.TLS)
	}

	mux := http.NewServeMux()

	for _, route := range []struct {
		pattern string
		handler http.Handler
	}{
		{"GET /inc/{value...}", stepHandler(magic.Increment)},
		{"GET /dec/{value...}", stepHandler(magic.Decrement)},
		{"GET /sequences", listHandler()},
		{"GET /sequences/{name}", getHandler()},
		{"POST /sequences/{name}/next", adm.middleware(advanceHandler(seqstore.Next))},
		{"POST /sequences/{name}/prev", adm.middleware(advanceHandler(seqstore.Prev))},
	} {
		slog.Info("registering handler", "pattern", route.pattern)
		mux.Handle(route.pattern, anti.middleware(route.handler))
	}
	mux.Handle("/", notFoundHandler())

	handler := http.Handler(mux)
	handler = headersMiddleware(responseHeaders(config.Headers), handler)
	handler = hostMiddleware(config.Host, handler)
	handler = newRecover(handler, internalServerErrorHandler())
	handler = logMiddleware(handler)

	return &Server{
		addr:            fmt.Sprintf("0.0.0.0:%d", config.Port),
		handler:         handler,
		shutdownTimeout: config.ShutdownTimeout,
		anti:            anti,
		tls:             tl,
	}
}

// Run listens on the configured port and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.anti.stop()
		return fmt.Errorf("server: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done or serving fails, then
// shuts down, waiting at most shutdownTimeout for requests in flight.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := ctxlog.Get(ctx)
	defer s.anti.stop()

	srv := &http.Server{
		Handler:     s.handler,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	if s.tls != nil {
		srv.TLSConfig = s.tls.config()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server is running", "addr", ln.Addr().String(), "tls", s.tls != nil)

		var err error
		if s.tls != nil {
			err = srv.ServeTLS(ln, "", "")
		} else {
			err = srv.Serve(ln)
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	if s.tls != nil {
		g.Go(func() error {
			s.tls.reloadLoop(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("server is shutting down")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer stopCancel()

		err := srv.Shutdown(stopCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("server shutdown timeout exceeded")
		} else if err == nil {
			logger.Info("all clients closed successfully")
		}
		return err
	})

	return g.Wait()
}
