//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/sara/shopease/internal/auth"
	"github.com/sara/shopease/internal/catalog"
	"github.com/sara/shopease/internal/database"
	"github.com/sara/shopease/internal/store"
	"github.com/sara/shopease/pkg/config"
	"github.com/sara/shopease/pkg/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()
	users := store.NewUsers(db)

	adminCfg := cfg.Admin
	if adminCfg.Email == "" {
		adminCfg.Email = "admin@example.com"
	}
	if adminCfg.Password == "" {
		adminCfg.Password = "admin123!"
	}

	if err := auth.EnsureAdmin(ctx, users, adminCfg, logger); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	fmt.Printf("Admin account ready: %s\n", adminCfg.Email)

	// Sample catalog
	catalogService := catalog.NewService(db)
	existing, err := catalogService.List(ctx, catalog.ListFilter{})
	if err != nil {
		log.Fatalf("failed to list products: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("Catalog already has %d products, skipping seed\n", len(existing))
		return
	}

	samples := []catalog.ProductInput{
		{Name: "Espresso Machine", Description: "15-bar pump espresso maker", Price: 299.99, Category: "kitchen", CountInStock: 12, Brand: "BrewCraft"},
		{Name: "Burr Coffee Grinder", Description: "Conical burr grinder, 18 settings", Price: 79.99, Category: "kitchen", CountInStock: 30, Brand: "BrewCraft"},
		{Name: "Ergonomic Office Chair", Description: "Adjustable lumbar support", Price: 149.50, Category: "furniture", CountInStock: 8, Brand: "SitWell"},
		{Name: "Mechanical Keyboard", Description: "Hot-swappable switches, RGB", Price: 89.00, Category: "electronics", CountInStock: 25, Brand: "KeyForge"},
		{Name: "USB-C Dock", Description: "Dual 4K output, 100W passthrough", Price: 119.00, Category: "electronics", CountInStock: 15, Brand: "KeyForge"},
	}
	for _, input := range samples {
		if _, err := catalogService.Create(ctx, input); err != nil {
			log.Fatalf("failed to seed product %q: %v", input.Name, err)
		}
	}

	fmt.Printf("Seeded %d products\n", len(samples))
}
