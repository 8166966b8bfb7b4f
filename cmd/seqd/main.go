package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"magicinc/internal/ctxlog"
	"magicinc/internal/rec"
	"magicinc/internal/seqstore"
	"magicinc/internal/server"
)

func defineSequences(ctx context.Context, sequences []SequenceConfig) error {
	logger := ctxlog.Get(ctx)

	for _, seq := range sequences {
		created, err := seqstore.Define(seq.Name, seq.Start)
		if err != nil {
			return fmt.Errorf("define %q: %w", seq.Name, err)
		}
		if created {
			logger.Info("defined sequence", "sequence", seq.Name, "start", seq.Start)
		}
	}
	return nil
}

func run(ctx context.Context, c Config) (err error) {
	defer rec.Wrap(&err, "seqd: %w")

	logger := ctxlog.Get(ctx)

	logger.Info("opening store")
	seqstore.Open(c.Store)
	defer ctxlog.Close(ctx, "store", seqstore.Closer())

	err = defineSequences(ctx, c.Sequences)
	if err != nil {
		return fmt.Errorf("sequences: %w", err)
	}

	logger.Info("starting server")
	srv := server.New(c.Server)

	return srv.Run(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	config := "config.yaml"
	if len(os.Args) > 1 {
		config = os.Args[1]
	}

	c, err := LoadConfig(ctx, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx = ctxlog.Setup(ctx, "seqd", c.Log)

	logger := ctxlog.Get(ctx)

	err = run(ctx, c)
	if err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
