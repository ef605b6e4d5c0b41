package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server serves the `/metrics` endpoint of a gatherer.
type Server struct {
	server *http.Server
}

func NewServer(listenAddr string, gatherer prometheus.Gatherer) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &Server{
		server: &http.Server{Addr: listenAddr, Handler: mux},
	}
}

// Start listens in the background, a listen failure is only logged since
// metrics never stop the emission.
func (s *Server) Start() {
	zlog.Info("starting metrics server", zap.String("listen_addr", s.server.Addr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				zlog.Debug("metrics server shutdown")
				return
			}
			zlog.Warn("metrics server failed", zap.Error(err), zap.String("listen_addr", s.server.Addr))
		}
	}()
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = s.server.Shutdown(ctx)
}
