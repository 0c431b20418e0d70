package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/goldenpolis/storefront/internal/config"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/logger"
	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
	"github.com/goldenpolis/storefront/internal/seed"
)

// 将内置演示目录写入存储的覆盖文档，之后可直接在存储里编辑商品。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.ToLoggerOptions(cfg.Server.Mode))
	stdLog := logger.StdLogger()

	var store kvstore.Store
	driver := strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	switch driver {
	case "", "sqlite", "postgres":
		if err := models.InitDB(cfg.Store.Driver, cfg.Store.DSN, models.DBPoolConfig{
			MaxOpenConns:           cfg.Store.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Store.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Store.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Store.Pool.ConnMaxIdleTimeSeconds,
		}); err != nil {
			stdLog.Fatalf("Failed to connect database: %v", err)
		}
		if err := models.AutoMigrate(); err != nil {
			stdLog.Fatalf("Failed to migrate database: %v", err)
		}
		store = kvstore.NewGormStore(models.DB)
	case "redis":
		store = kvstore.NewRedisStore(cfg.Store.Redis)
	default:
		stdLog.Fatalf("Unsupported store driver for seeding: %s", cfg.Store.Driver)
	}

	catalogRepo := repository.NewCatalogRepository(store)
	products := seed.Products()
	if err := catalogRepo.SaveOverride(context.Background(), products); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}

	for _, p := range products {
		stdLog.Printf("Seeded product: %s (%s)", p.Name, p.Slug)
	}
	fmt.Printf("\n✅ Seeded %d products into the catalog override\n", len(products))
}
