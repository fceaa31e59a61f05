// ============================================================================
// eiya - Pattern Based Date Engine
// ============================================================================
//
// Package:     server
// Description: Gregor gRPC server with a Prometheus metrics listener
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/msto63/eiya/foundation/core/config"
	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/internal/gregor/service"
	coreGrpc "github.com/msto63/eiya/pkg/core/grpc"
	"github.com/msto63/eiya/pkg/core/health"
	"github.com/msto63/eiya/pkg/core/logging"
	"google.golang.org/grpc"
)

// Server is the Gregor gRPC server
type Server struct {
	service   *service.Service
	grpc      *coreGrpc.Server
	metrics   *http.Server
	logger    *logging.Logger
	config    config.ServerConfig
	startTime time.Time
}

// New creates a new Gregor server around svc
func New(cfg config.ServerConfig, svc *service.Service, logger *logging.Logger) (*Server, error) {
	if svc == nil {
		return nil, eiyaerror.New("service is required").
			WithCode(eiyaerror.CodeServiceInitialization).
			WithOperation("server.New")
	}
	if logger == nil {
		logger = logging.New("gregor-server")
	}

	s := &Server{
		service:   svc,
		grpc:      coreGrpc.NewServer(coreGrpc.ServerConfigFrom(cfg), logger),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
	RegisterGregorServer(s.grpc.GRPCServer(), s)

	if cfg.MetricsPort > 0 {
		s.metrics = &http.Server{
			Addr:              cfg.MetricsAddress(),
			Handler:           s.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return s, nil
}

// Serve serves gRPC on lis and blocks. The metrics listener is not started.
func (s *Server) Serve(lis net.Listener) error {
	s.refreshHealth(context.Background())
	return s.grpc.Serve(lis)
}

// Start starts the metrics listener in the background and serves gRPC
func (s *Server) Start() error {
	s.logger.Info("Starting Gregor server", "address", s.config.Address())
	s.startMetrics()
	s.refreshHealth(context.Background())
	return s.grpc.Start()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("Starting Gregor server (async)", "address", s.config.Address())
	s.startMetrics()
	s.refreshHealth(context.Background())
	return s.grpc.StartAsync()
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping Gregor server", "uptime", time.Since(s.startTime).Round(time.Second))
	if s.metrics != nil {
		if err := s.metrics.Shutdown(ctx); err != nil {
			s.logger.Warn("Metrics listener shutdown failed", "error", err)
		}
	}
	s.grpc.StopWithTimeout(ctx)
}

// GRPCServer returns the underlying gRPC server
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc.GRPCServer()
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.service.Health()
}

// refreshHealth publishes the service health to the gRPC health service
func (s *Server) refreshHealth(ctx context.Context) *health.Report {
	report := s.service.Health().Check(ctx)
	s.grpc.SetServingStatus(ServiceName, report.Healthy())
	if !report.Healthy() {
		s.logger.Warn("Gregor service unhealthy", "report", report.String())
	}
	return report
}

func (s *Server) startMetrics() {
	if s.metrics == nil {
		return
	}
	go func() {
		s.logger.Info("Metrics listener started", "address", s.metrics.Addr)
		if err := s.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Metrics listener failed", "error", err)
		}
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.refreshHealth(r.Context())
	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}
