// Package grpcx runs the gRPC side port every service exposes for health
// probes and reflection.
package grpcx

import (
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	GRPC    *grpc.Server
	Health  *health.Server
	service string
}

// NewServer registers grpc.health.v1.Health and reflection. The service
// starts NOT_SERVING until MarkServing is called.
func NewServer(service string) *Server {
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	hs.SetServingStatus(service, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Server{GRPC: gs, Health: hs, service: service}
}

func (s *Server) MarkServing() {
	s.Health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.Health.SetServingStatus(s.service, healthpb.HealthCheckResponse_SERVING)
}

// Serve blocks on lis until Stop.
func (s *Server) Serve(lis net.Listener) error {
	log.Printf("[grpc] %s health listening on %s", s.service, lis.Addr())
	return s.GRPC.Serve(lis)
}

// Drain flips every status to NOT_SERVING; probes see it while HTTP shuts down.
func (s *Server) Drain() {
	s.Health.Shutdown()
}

// Stop waits for in-flight RPCs, then closes the listener.
func (s *Server) Stop() {
	s.GRPC.GracefulStop()
}
