package main

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/MikeMC777/billing-ecom/internal/config"
	"github.com/MikeMC777/billing-ecom/internal/db"
	prod "github.com/MikeMC777/billing-ecom/internal/product"
	"github.com/MikeMC777/billing-ecom/internal/server"
)

// @title     Product Service API
// @version   1.0
// @BasePath  /api
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[config] %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.ProductDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool, prod.Schema); err != nil {
		log.Fatal(err)
	}

	repo := prod.NewPGRepo(pool)
	if cfg.SeedData {
		seed := uint64(time.Now().UnixNano())
		prod.Seed(ctx, repo, cfg.SeedProducts, rand.New(rand.NewPCG(seed, seed>>1)))
	}

	if err := server.Run(server.Options{
		Name:            "product-service",
		HTTPAddr:        cfg.ProductSvcAddr,
		GRPCAddr:        cfg.ProductGRPCAddr,
		Handler:         newRouter(repo),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}); err != nil {
		log.Printf("product-service: %v", err)
	}
}
