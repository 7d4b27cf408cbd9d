package main

import (
	"context"
	"log"
	"time"

	"catalogproxy/internal/config"
	"catalogproxy/internal/repos"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := repos.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := repos.Seed(ctx, store); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("Seeded %d brands and %d products into %s.", len(repos.SeedBrands), len(repos.SeedProducts), cfg.DBDriver)
}
