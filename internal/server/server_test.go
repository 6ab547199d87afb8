package server

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Options{
			Name:            "test-service",
			HTTPAddr:        "127.0.0.1:0",
			GRPCAddr:        "127.0.0.1:0",
			Handler:         http.NotFoundHandler(),
			ShutdownTimeout: time.Second,
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRun_GRPCPortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	err = run(context.Background(), Options{
		Name:            "test-service",
		HTTPAddr:        "127.0.0.1:0",
		GRPCAddr:        busy.Addr().String(),
		Handler:         http.NotFoundHandler(),
		ShutdownTimeout: time.Second,
	})
	assert.Error(t, err)
}
