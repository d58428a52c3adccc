package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// MetricsServer serves one handler at a path, typically /metrics.
type MetricsServer struct {
	srv *http.Server
	ln  net.Listener
}

// StartMetricsServer listens on addr and serves handler at path.
func StartMetricsServer(addr, path string, handler http.Handler) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server stopped", logfields.Error(err))
		}
	}()
	slog.Info("Serving metrics", slog.String("addr", ln.Addr().String()), logfields.Path(path))
	return &MetricsServer{srv: srv, ln: ln}, nil
}

// Addr returns the bound address.
func (m *MetricsServer) Addr() string { return m.ln.Addr().String() }

// Stop shuts the server down gracefully.
func (m *MetricsServer) Stop(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
