package reportserver

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const shutdownGrace = 5 * time.Second

// Config captures the settings for serving evaluation run reports.
type Config struct {
	Addr      string
	OutputDir string
}

// Serve hosts run reports and the run database until ctx is cancelled.
// Cancellation drains in-flight requests within a bounded grace period.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{Addr: cfg.Addr, Handler: handler}
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.ListenAndServe() }()

	var result error
	select {
	case result = <-serveErr:
	case <-ctx.Done():
		graceCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = server.Shutdown(graceCtx)
		result = <-serveErr
	}
	if errors.Is(result, http.ErrServerClosed) {
		return nil
	}
	return result
}
