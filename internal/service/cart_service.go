package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
)

// VariantChoice 加购时的组合选择
type VariantChoice struct {
	Color  string `json:"color"`
	Size   string `json:"size"`
	Design string `json:"design,omitempty"`
}

// AddToCartInput 加入购物车输入
type AddToCartInput struct {
	ProductID uint
	Quantity  int
	Choice    *VariantChoice // 可变商品必填
}

// CartService 购物车服务。
// 行项身份：固定商品用商品 ID，可变商品用 商品ID_颜色_尺码[_款式]。
// 单价与组合库存在加入时快照，之后的目录变动不影响已有行项。
type CartService struct {
	cartRepo repository.CartRepository
	catalog  *CatalogService
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, catalog *CatalogService) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

// List 获取购物车行项
func (s *CartService) List(ctx context.Context) ([]models.CartItem, error) {
	return s.cartRepo.Load(ctx)
}

// Add 加入购物车。
// 数字商品重复加入为幂等空操作；数量静默收敛到 [1, 加入时库存]。
// 零库存组合拒绝加入。
func (s *CartService) Add(ctx context.Context, input AddToCartInput) (*models.CartItem, error) {
	product, err := s.catalog.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	var variant *models.Variant
	if product.IsVariable {
		if input.Choice == nil {
			return nil, ErrIncompleteSelection
		}
		variant, err = s.resolveChoice(product, *input.Choice)
		if err != nil {
			return nil, err
		}
		if variant.Stock <= 0 {
			return nil, ErrInvalidSelection
		}
	} else if product.Stock <= 0 && !product.IsDigital() {
		return nil, ErrInvalidSelection
	}

	items, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	key := lineKey(product, variant)
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	for i := range items {
		if items[i].Key != key {
			continue
		}
		if items[i].IsDigital() {
			// 数字商品重复加入为空操作
			return &items[i], nil
		}
		prev := items[i].Quantity
		items[i].Quantity += quantity
		maxStock := s.maxStock(ctx, &items[i])
		switch {
		case maxStock <= 0:
			// 商品已不在目录中，数量冻结
			items[i].Quantity = prev
		case items[i].Quantity > maxStock:
			items[i].Quantity = maxStock
		}
		if err := s.cartRepo.Save(ctx, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}

	item := models.CartItem{
		Key:       key,
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		Type:      product.Type,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if product.IsDigital() {
		item.Quantity = 1
	}
	if variant != nil {
		item.UnitPrice = variant.Price
		item.Variant = &models.VariantSnapshot{
			Color:  variant.Color,
			Size:   variant.Size,
			Design: variant.Design,
			Stock:  variant.Stock,
			Image:  firstImage(variant.Images),
		}
		item.Image = firstImage(variant.Images)
		if item.Quantity > variant.Stock {
			item.Quantity = variant.Stock
		}
	} else {
		item.UnitPrice = product.Price
		item.Image = firstImage(product.Images)
		if !product.IsDigital() && item.Quantity > product.Stock {
			item.Quantity = product.Stock
		}
	}

	items = append(items, item)
	if err := s.cartRepo.Save(ctx, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity 按增量调整行项数量，静默收敛到 [1, 库存上限]。
// 行项不存在时为静默空操作，返回 (nil, nil)。
func (s *CartService) UpdateQuantity(ctx context.Context, key string, delta int) (*models.CartItem, error) {
	items, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Key != key {
			continue
		}
		if items[i].IsDigital() {
			// 数字商品数量恒为 1
			items[i].Quantity = 1
			if err := s.cartRepo.Save(ctx, items); err != nil {
				return nil, err
			}
			return &items[i], nil
		}
		prev := items[i].Quantity
		items[i].Quantity += delta
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
		maxStock := s.maxStock(ctx, &items[i])
		switch {
		case maxStock <= 0:
			// 商品已不在目录中，数量只减不增
			if items[i].Quantity > prev {
				items[i].Quantity = prev
			}
		case items[i].Quantity > maxStock:
			items[i].Quantity = maxStock
		}
		if err := s.cartRepo.Save(ctx, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, nil
}

// Remove 删除行项；行项不存在时为静默空操作
func (s *CartService) Remove(ctx context.Context, key string) error {
	items, err := s.cartRepo.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Key != key {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(items) {
		return nil
	}
	return s.cartRepo.Save(ctx, remaining)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}

// Total 购物车合计（快照单价 × 数量 的总和）
func (s *CartService) Total(ctx context.Context) (models.Money, error) {
	items, err := s.cartRepo.Load(ctx)
	if err != nil {
		return models.Money{}, err
	}
	return sumLineItems(items), nil
}

// Count 购物车商品件数
func (s *CartService) Count(ctx context.Context) (int, error) {
	items, err := s.cartRepo.Load(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// sumLineItems 行项求和。购物车合计与订单合计必须共用此实现。
func sumLineItems(items []models.CartItem) models.Money {
	total := models.NewMoneyFromInt(0)
	for _, item := range items {
		total = total.AddMoney(item.Subtotal())
	}
	return total
}

// maxStock 行项数量上限：组合行项用加入时快照，固定商品查当前目录
func (s *CartService) maxStock(ctx context.Context, item *models.CartItem) int {
	if item.Variant != nil {
		return item.Variant.Stock
	}
	product, err := s.catalog.FindByID(ctx, item.ProductID)
	if err != nil || product == nil {
		return 0
	}
	return product.Stock
}

func (s *CartService) resolveChoice(product *models.Product, choice VariantChoice) (*models.Variant, error) {
	vs := NewVariantSelection(product)
	if err := vs.SelectColor(choice.Color); err != nil {
		return nil, err
	}
	// 款式按已选颜色判断是否必填
	if len(vs.Designs()) > 0 {
		if choice.Design == "" {
			return nil, ErrIncompleteSelection
		}
		if err := vs.SelectDesign(choice.Design); err != nil {
			return nil, err
		}
	}
	if err := vs.SelectSize(choice.Size); err != nil {
		return nil, err
	}
	return vs.Resolve()
}

func lineKey(product *models.Product, variant *models.Variant) string {
	if variant == nil {
		return fmt.Sprintf("%d", product.ID)
	}
	key := fmt.Sprintf("%d_%s_%s", product.ID, variant.Color, variant.Size)
	if variant.Design != "" {
		key += "_" + variant.Design
	}
	return key
}

func firstImage(images models.StringArray) string {
	if len(images) > 0 {
		return images[0]
	}
	return ""
}
