// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"time"

	"github.com/wneessen/gismeteo-weather/internal/logger"
)

const (
	metricsPath            = "/metrics"
	metricsReadTimeout     = 5 * time.Second
	metricsShutdownTimeout = 5 * time.Second
)

// serveMetrics exposes the Prometheus metrics on the configured listen address until the context
// is canceled.
func (s *Service) serveMetrics(ctx context.Context) {
	mux := stdhttp.NewServeMux()
	mux.Handle(metricsPath, s.metrics.Handler())
	server := &stdhttp.Server{
		Addr:              s.config.Metrics.Listen,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadTimeout,
	}

	stop := context.AfterFunc(ctx, func() {
		ctxShutdown, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			s.logger.Error("failed to shut down metrics server", logger.Err(err))
		}
	})
	defer stop()

	s.logger.Debug("serving metrics", slog.String("listen", s.config.Metrics.Listen),
		slog.String("path", metricsPath))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		s.logger.Error("failed to serve metrics", logger.Err(err))
	}
}
