package grpcx

import (
	"context"
	"io"
	"log"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func init() {
	log.SetOutput(io.Discard)
}

func dial(t *testing.T, lis *bufconn.Listener) healthpb.HealthClient {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return healthpb.NewHealthClient(conn)
}

func status(t *testing.T, c healthpb.HealthClient, svc string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := c.Check(ctx, &healthpb.HealthCheckRequest{Service: svc})
	require.NoError(t, err)
	return res.GetStatus()
}

func TestHealthLifecycle(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := NewServer("billing-service")
	go func() { _ = srv.Serve(lis) }()
	defer srv.GRPC.Stop()

	client := dial(t, lis)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, client, "billing-service"))

	srv.MarkServing()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, client, "billing-service"))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, client, ""))

	srv.Drain()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, client, "billing-service"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, client, ""))
}
