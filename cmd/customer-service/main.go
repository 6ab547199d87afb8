package main

import (
	"context"
	"log"

	"github.com/MikeMC777/billing-ecom/internal/config"
	"github.com/MikeMC777/billing-ecom/internal/customer"
	"github.com/MikeMC777/billing-ecom/internal/db"
	"github.com/MikeMC777/billing-ecom/internal/server"
)

// @title     Customer Service API
// @version   1.0
// @BasePath  /api
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[config] %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.CustomerDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool, customer.Schema); err != nil {
		log.Fatal(err)
	}

	repo := customer.NewPGRepo(pool)
	if cfg.SeedData {
		customer.Seed(ctx, repo, cfg.SeedCustomers)
	}

	if err := server.Run(server.Options{
		Name:            "customer-service",
		HTTPAddr:        cfg.CustomerSvcAddr,
		GRPCAddr:        cfg.CustomerGRPCAddr,
		Handler:         newRouter(repo),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}); err != nil {
		log.Printf("customer-service: %v", err)
	}
}
