package config

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"CUSTOMER_SERVICE_BASEURL", "PRODUCT_SERVICE_BASEURL", "POSTGRES_DSN",
		"BILLING_POSTGRES_DSN", "RESOLVE_WORKERS", "REMOTE_TIMEOUT", "SEED_DATA",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":8083", cfg.BillingSvcAddr)
	assert.Equal(t, "http://customer:8081", cfg.CustomerSvcBaseURL)
	assert.Equal(t, "http://product:8082", cfg.ProductSvcBaseURL)
	assert.Equal(t, 1, cfg.ResolveWorkers)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 10, cfg.SeedCustomers)
	assert.Equal(t, cfg.CustomerDSN, cfg.BillingDSN)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://shared")
	t.Setenv("BILLING_POSTGRES_DSN", "postgres://billing")
	t.Setenv("RESOLVE_WORKERS", "4")
	t.Setenv("REMOTE_TIMEOUT", "750ms")
	t.Setenv("SEED_DATA", "true")

	cfg := Load()

	assert.Equal(t, "postgres://shared", cfg.CustomerDSN)
	assert.Equal(t, "postgres://billing", cfg.BillingDSN)
	assert.Equal(t, 4, cfg.ResolveWorkers)
	assert.Equal(t, 750*time.Millisecond, cfg.RemoteTimeout)
	assert.True(t, cfg.SeedData)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("RESOLVE_WORKERS", "many")
	t.Setenv("REMOTE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 1, cfg.ResolveWorkers)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("CUSTOMER_SERVICE_BASEURL", "")
	base := Load()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad customer url", func(c *Config) { c.CustomerSvcBaseURL = "not a url" }},
		{"missing product url", func(c *Config) { c.ProductSvcBaseURL = "" }},
		{"zero workers", func(c *Config) { c.ResolveWorkers = 0 }},
		{"too many workers", func(c *Config) { c.ResolveWorkers = 500 }},
		{"zero timeout", func(c *Config) { c.RemoteTimeout = 0 }},
		{"missing dsn", func(c *Config) { c.BillingDSN = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
