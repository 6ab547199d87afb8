// Package server runs a service's HTTP API and gRPC health port until
// SIGINT/SIGTERM, then shuts both down.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeMC777/billing-ecom/internal/grpcx"
)

type Options struct {
	Name            string
	HTTPAddr        string
	GRPCAddr        string
	Handler         http.Handler
	ShutdownTimeout time.Duration
}

func Run(opts Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return run(ctx, opts)
}

func run(ctx context.Context, opts Options) error {
	lis, err := net.Listen("tcp", opts.GRPCAddr)
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", opts.GRPCAddr, err)
	}
	health := grpcx.NewServer(opts.Name)

	srv := &http.Server{
		Addr:              opts.HTTPAddr,
		Handler:           opts.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 2)
	go func() {
		if err := health.Serve(lis); err != nil {
			errc <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		log.Printf("%s listening on %s", opts.Name, opts.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()
	health.MarkServing()

	select {
	case <-ctx.Done():
		log.Printf("%s shutting down", opts.Name)
	case err = <-errc:
		log.Printf("%s failed: %v", opts.Name, err)
	}

	health.Drain()
	shCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if shErr := srv.Shutdown(shCtx); shErr != nil {
		log.Printf("%s http shutdown: %v", opts.Name, shErr)
	}
	health.Stop()
	return err
}
