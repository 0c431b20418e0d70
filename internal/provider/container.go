package provider

import (
	"fmt"
	"strings"
	"time"

	"github.com/goldenpolis/storefront/internal/config"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/logger"
	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/notify"
	"github.com/goldenpolis/storefront/internal/repository"
	"github.com/goldenpolis/storefront/internal/seed"
	"github.com/goldenpolis/storefront/internal/service"
	"github.com/goldenpolis/storefront/internal/upload"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	Store  kvstore.Store

	// Repositories
	CatalogRepo repository.CatalogRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	CommentRepo repository.CommentRepository
	TicketRepo  repository.TicketRepository

	// Collaborators
	Uploader upload.ReceiptUploader
	Notifier notify.Notifier

	// Services
	CatalogService       *service.CatalogService
	CartService          *service.CartService
	OrderService         *service.OrderService
	PaymentMethodService *service.PaymentMethodService
	CheckoutService      *service.CheckoutService
	CommentService       *service.CommentService
	SupportService       *service.SupportService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	c := &Container{
		Config: cfg,
		Store:  store,
	}

	c.initRepositories()
	if err := c.initCollaborators(); err != nil {
		return nil, err
	}
	c.initServices()

	return c, nil
}

func newStore(cfg *config.Config) (kvstore.Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	switch driver {
	case "", "sqlite", "postgres":
		if models.DB == nil {
			return nil, fmt.Errorf("database not initialized for driver %q", driver)
		}
		return kvstore.NewGormStore(models.DB), nil
	case "redis":
		store := kvstore.NewRedisStore(cfg.Store.Redis)
		return store, nil
	case "memory":
		return kvstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

func (c *Container) initRepositories() {
	c.CatalogRepo = repository.NewCatalogRepository(c.Store)
	c.CartRepo = repository.NewCartRepository(c.Store)
	c.OrderRepo = repository.NewOrderRepository(c.Store)
	c.CommentRepo = repository.NewCommentRepository(c.Store)
	c.TicketRepo = repository.NewTicketRepository(c.Store)
}

func (c *Container) initCollaborators() error {
	switch strings.ToLower(strings.TrimSpace(c.Config.Upload.Provider)) {
	case "s3":
		uploader, err := upload.NewS3Uploader(c.Config.Upload.S3)
		if err != nil {
			return fmt.Errorf("init s3 uploader: %w", err)
		}
		c.Uploader = uploader
	default:
		c.Uploader = upload.NewScriptUploader(c.Config.Upload.Script.Endpoint)
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Notify.Provider)) {
	case "smtp":
		subjects := map[string]string{
			c.Config.Notify.Templates.VendorOrder:   "Nuevo pedido - " + c.Config.Shop.Name,
			c.Config.Notify.Templates.CustomerOrder: "Confirmación de tu pedido - " + c.Config.Shop.Name,
		}
		notifier, err := notify.NewSMTPNotifier(c.Config.Notify.SMTP, subjects)
		if err != nil {
			return fmt.Errorf("init smtp notifier: %w", err)
		}
		c.Notifier = notifier
	case "none":
		logger.Warnw("notifier_disabled", "provider", "none")
		c.Notifier = notify.NopNotifier{}
	default:
		notifier, err := notify.NewEmailJSNotifier(c.Config.Notify.EmailJS)
		if err != nil {
			return fmt.Errorf("init emailjs notifier: %w", err)
		}
		c.Notifier = notifier
	}
	return nil
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.CatalogRepo, seed.Products())
	c.CartService = service.NewCartService(c.CartRepo, c.CatalogService)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CatalogService)
	c.PaymentMethodService = service.NewPaymentMethodService(c.Config.Payment)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.CatalogService)
	c.SupportService = service.NewSupportService(c.TicketRepo)

	c.CheckoutService = service.NewCheckoutService(
		c.CartService,
		c.OrderService,
		c.PaymentMethodService,
		c.Uploader,
		c.Notifier,
		service.CheckoutOptions{
			UploadTimeout:    time.Duration(c.Config.Checkout.UploadTimeoutMS) * time.Millisecond,
			NotifyTimeout:    time.Duration(c.Config.Checkout.NotifyTimeoutMS) * time.Millisecond,
			VendorName:       c.Config.Notify.Vendor.Name,
			VendorEmail:      c.Config.Notify.Vendor.Email,
			ShopName:         c.Config.Shop.Name,
			Currency:         c.Config.Shop.Currency,
			VendorTemplate:   c.Config.Notify.Templates.VendorOrder,
			CustomerTemplate: c.Config.Notify.Templates.CustomerOrder,
		},
	)
}
