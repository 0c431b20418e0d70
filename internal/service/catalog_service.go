package service

import (
	"context"
	"sort"
	"strings"

	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
)

// 价格排序方向
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ListProductsInput 商品列表查询条件
type ListProductsInput struct {
	Search      string
	Category    string
	InStockOnly bool
	Sort        string
}

// ProductSummary 列表用商品摘要（含价格区间）
type ProductSummary struct {
	Product   models.Product `json:"product"`
	PriceFrom models.Money   `json:"price_from"`
	PriceTo   models.Money   `json:"price_to"`
	InStock   bool           `json:"in_stock"`
}

// CatalogService 商品目录服务。
// 目录来源优先级：持久化覆盖文档 > 内置种子数据。
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	seed        []models.Product
}

// NewCatalogService 创建目录服务
func NewCatalogService(catalogRepo repository.CatalogRepository, seed []models.Product) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		seed:        seed,
	}
}

// Products 加载当前生效的目录
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	override, found, err := s.catalogRepo.LoadOverride(ctx)
	if err != nil {
		return nil, err
	}
	products := s.seed
	if found {
		products = override
	}
	result := make([]models.Product, len(products))
	copy(result, products)
	for i := range result {
		if result[i].Slug == "" {
			result[i].Slug = Slugify(result[i].Name)
		}
	}
	return result, nil
}

// FindByID 按 ID 查找商品；未找到返回 nil（非错误）
func (s *CatalogService) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// FindBySlug 按 slug 查找商品；未找到返回 nil（非错误）
func (s *CatalogService) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Slug == slug {
			return &products[i], nil
		}
	}
	return nil, nil
}

// List 按条件过滤并排序商品列表
func (s *CatalogService) List(ctx context.Context, input ListProductsInput) ([]ProductSummary, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))
	category := strings.ToLower(strings.TrimSpace(input.Category))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		if category != "" && !matchesCategory(&p, category) {
			continue
		}
		if input.InStockOnly && !p.InStock() {
			continue
		}
		filtered = append(filtered, p)
	}

	switch input.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			lowI, _ := filtered[i].PriceRange()
			lowJ, _ := filtered[j].PriceRange()
			return lowI.LessThan(lowJ.Decimal)
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			_, highI := filtered[i].PriceRange()
			_, highJ := filtered[j].PriceRange()
			return highI.GreaterThan(highJ.Decimal)
		})
	}

	summaries := make([]ProductSummary, 0, len(filtered))
	for _, p := range filtered {
		low, high := p.PriceRange()
		summaries = append(summaries, ProductSummary{
			Product:   p,
			PriceFrom: low,
			PriceTo:   high,
			InStock:   p.InStock(),
		})
	}
	return summaries, nil
}

func matchesSearch(p *models.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	if strings.Contains(strings.ToLower(strings.Join(p.Category, " ")), search) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(p.Specs, " ")), search)
}

func matchesCategory(p *models.Product, category string) bool {
	for _, c := range p.Category {
		if strings.ToLower(strings.TrimSpace(c)) == category {
			return true
		}
	}
	return false
}
