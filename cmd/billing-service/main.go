package main

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/MikeMC777/billing-ecom/internal/billing"
	"github.com/MikeMC777/billing-ecom/internal/config"
	"github.com/MikeMC777/billing-ecom/internal/db"
	"github.com/MikeMC777/billing-ecom/internal/server"
)

const seedRetryDelay = 15 * time.Second

// @title     Billing Service API
// @version   1.0
// @BasePath  /api
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[config] %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.BillingDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool, billing.Schema...); err != nil {
		log.Fatal(err)
	}

	repo := billing.NewPGRepo(pool)
	resolver := billing.NewHTTPResolver(cfg.CustomerSvcBaseURL, cfg.ProductSvcBaseURL, cfg.RemoteTimeout)
	svc := billing.NewService(repo, resolver, cfg.ResolveWorkers)

	if cfg.SeedData {
		// peers seed themselves on boot; bills need their rows first
		seed := uint64(time.Now().UnixNano())
		go billing.SeedWithRetry(ctx, repo, resolver, rand.New(rand.NewPCG(seed, seed>>1)), seedRetryDelay)
	}

	if err := server.Run(server.Options{
		Name:            "billing-service",
		HTTPAddr:        cfg.BillingSvcAddr,
		GRPCAddr:        cfg.BillingGRPCAddr,
		Handler:         newRouter(svc),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}); err != nil {
		log.Printf("billing-service: %v", err)
	}
}
