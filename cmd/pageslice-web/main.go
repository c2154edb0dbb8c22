// Command pageslice-web serves the browser UI for interactive
// screenshot pagination.
//
// Usage:
//
//	pageslice-web [-addr :8777] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tsawler/pageslice/observability"
	"github.com/tsawler/pageslice/web"
)

func main() {
	addr := flag.String("addr", ":8777", "listen address")
	dataDir := flag.String("data", "", "session data directory (default: a temp directory)")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	logger := observability.NewStdLogger(os.Stderr, *verbose)

	baseDir := *dataDir
	if baseDir == "" {
		tmp, err := os.MkdirTemp("", "pageslice-web-")
		if err != nil {
			logger.Error("creating data directory", observability.Error("error", err))
			os.Exit(1)
		}
		baseDir = tmp
	} else {
		abs, err := filepath.Abs(baseDir)
		if err != nil {
			logger.Error("resolving data directory", observability.Error("error", err))
			os.Exit(1)
		}
		baseDir = abs
	}

	srv := web.NewServer(baseDir, logger)
	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Screenshot Paginator listening on %s\n", *addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		fmt.Println("\nShutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", observability.Error("error", err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", observability.Error("error", err))
			srv.Store().Cleanup()
			os.Exit(1)
		}
	}
	srv.Store().Cleanup()
}
