package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
)

// BuildOrderInput 组装订单输入
type BuildOrderInput struct {
	Items         []models.CartItem
	Customer      models.Customer
	PaymentMethod string // 展示用标签
	ReceiptURL    string
	Currency      string
}

// OrderService 订单组装与历史服务
type OrderService struct {
	orderRepo repository.OrderRepository
	catalog   *CatalogService
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, catalog *CatalogService) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		catalog:   catalog,
	}
}

// BuildOrder 从购物车快照组装不可变订单。
// 行项深拷贝，订单合计与购物车合计共用同一求和实现。
func (s *OrderService) BuildOrder(ctx context.Context, input BuildOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.CartItem, len(input.Items))
	copy(items, input.Items)
	for i := range items {
		if items[i].Variant != nil {
			snapshot := *items[i].Variant
			items[i].Variant = &snapshot
		}
	}

	order := &models.Order{
		OrderNo:       generateOrderNo(),
		Customer:      input.Customer,
		Items:         items,
		TotalAmount:   sumLineItems(items),
		Currency:      input.Currency,
		PaymentMethod: input.PaymentMethod,
		ReceiptURL:    input.ReceiptURL,
		DownloadLinks: s.downloadLinks(ctx, items),
		CreatedAt:     time.Now(),
	}
	return order, nil
}

// Persist 将订单追加到历史
func (s *OrderService) Persist(ctx context.Context, order *models.Order) error {
	return s.orderRepo.Append(ctx, *order)
}

// List 获取历史订单
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.List(ctx)
}

// downloadLinks 收集订单中数字商品的下载链接
func (s *OrderService) downloadLinks(ctx context.Context, items []models.CartItem) []string {
	var links []string
	for _, item := range items {
		if !item.IsDigital() {
			continue
		}
		product, err := s.catalog.FindByID(ctx, item.ProductID)
		if err != nil || product == nil || product.DownloadURL == "" {
			continue
		}
		links = append(links, product.DownloadURL)
	}
	return links
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s%s%s", constants.OrderNoPrefix, now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
