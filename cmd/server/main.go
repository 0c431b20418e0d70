package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/goldenpolis/storefront/internal/app"
	"github.com/goldenpolis/storefront/internal/config"
	"github.com/goldenpolis/storefront/internal/logger"
	"github.com/goldenpolis/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Log.ToLoggerOptions(cfg.Server.Mode))
	stdLog := logger.StdLogger()

	// SQL 类存储驱动需要数据库连接；Redis 与内存驱动跳过
	driver := strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if driver == "" || driver == "sqlite" || driver == "postgres" {
		if err := models.InitDB(cfg.Store.Driver, cfg.Store.DSN, models.DBPoolConfig{
			MaxOpenConns:           cfg.Store.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Store.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Store.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Store.Pool.ConnMaxIdleTimeSeconds,
		}); err != nil {
			stdLog.Fatalf("数据库初始化失败: %v", err)
		}
		if err := models.AutoMigrate(); err != nil {
			stdLog.Fatalf("数据库迁移失败: %v", err)
		}
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiYellow + "╔══════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiYellow + "║        GoldenPolis Storefront API            ║" + ansiReset)
	fmt.Println(ansiYellow + "╚══════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Estampados que inspiran" + ansiReset)
	fmt.Println(ansiDim + "----------------------------------------------" + ansiReset)
}
