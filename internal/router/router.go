package router

import (
	"fmt"

	"github.com/goldenpolis/storefront/internal/config"
	publichandlers "github.com/goldenpolis/storefront/internal/http/handlers/public"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/logger"
	"github.com/goldenpolis/storefront/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Log.ToLoggerOptions(cfg.Server.Mode))
	}
	r := gin.New()

	handler := publichandlers.New(c)

	// 结账限流仅在 Redis 存储驱动下启用，复用存储连接
	var redisClient *redis.Client
	checkoutRulePrefix := "gp"
	if store, ok := c.Store.(*kvstore.RedisStore); ok {
		redisClient = store.Client()
		checkoutRulePrefix = store.Prefix()
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", checkoutRulePrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
		Message:       "too many checkout attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（商品图片与支付二维码）
	r.Static("/assets", "./assets")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开目录接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", handler.GetProducts)
			public.GET("/products/:slug", handler.GetProductBySlug)
			public.GET("/products/:slug/options", handler.GetProductOptions)
			public.GET("/locations", handler.GetLocations)
			public.GET("/payment-methods", handler.GetPaymentMethods)
		}

		// 购物车
		apiV1.GET("/cart", handler.GetCart)
		apiV1.POST("/cart/items", handler.AddCartItem)
		apiV1.PUT("/cart/items/:key", handler.UpdateCartItem)
		apiV1.DELETE("/cart/items/:key", handler.DeleteCartItem)
		apiV1.DELETE("/cart", handler.ClearCart)

		// 结账与订单
		apiV1.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByIP), handler.Checkout)
		apiV1.GET("/orders", handler.ListOrders)

		// 评论与售后
		apiV1.GET("/products/:slug/comments", handler.GetComments)
		apiV1.POST("/products/:slug/comments", handler.CreateComment)
		apiV1.GET("/support/tickets", handler.ListSupportTickets)
		apiV1.POST("/support/tickets", handler.CreateSupportTicket)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
