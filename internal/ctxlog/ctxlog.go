// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var setupMu sync.Mutex
var setup = false

type Config struct {
	Dir string `yaml:"dir"`
}

// Setup installs a JSON logger on stderr as the default and stores it in ctx.
// With a non-empty dir, records are also written to <dir>/<name>-<time>.log.
// Later calls reuse the logger installed by the first one.
func Setup(ctx context.Context, name string, config Config) context.Context {
	setupMu.Lock()
	defer setupMu.Unlock()

	if setup {
		return Store(ctx, slog.Default())
	}

	var w io.Writer = os.Stderr
	if config.Dir != "" {
		err := os.MkdirAll(config.Dir, 0755)
		if err != nil {
			panic(fmt.Errorf("create log dir: %w", err))
		}

		logFile, err := os.Create(filepath.Join(config.Dir, name+"-"+time.Now().Format("2006-01-02-15-04-05.log")))
		if err != nil {
			panic(fmt.Errorf("create log file: %w", err))
		}

		w = io.MultiWriter(os.Stderr, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(w, nil)).With("app", name)
	slog.SetDefault(logger)

	setup = true

	return Store(ctx, logger)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
