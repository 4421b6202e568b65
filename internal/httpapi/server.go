package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Server timeouts. Audits of large screenshots can take several seconds
// of OCR, so the write timeout is generous.
const (
	ReadTimeout     = 30 * time.Second
	WriteTimeout    = 2 * time.Minute
	ShutdownTimeout = 10 * time.Second
)

// ListenAndServe serves h on addr until ctx is canceled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("http.listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	h.logger.Info("http.shutting_down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
