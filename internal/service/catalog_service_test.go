package service

import (
	"context"
	"testing"

	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
	"github.com/goldenpolis/storefront/internal/seed"
)

func setupCatalogTest(t *testing.T) (*CatalogService, repository.CatalogRepository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	catalogRepo := repository.NewCatalogRepository(store)
	return NewCatalogService(catalogRepo, seed.Products()), catalogRepo
}

func TestCatalogFindByID(t *testing.T) {
	catalog, _ := setupCatalogTest(t)
	ctx := context.Background()

	product, err := catalog.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if product == nil || product.Name != "Buzo con capota Hoodie Dama" {
		t.Fatalf("unexpected product: %+v", product)
	}

	missing, err := catalog.FindByID(ctx, 999)
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}
}

func TestCatalogFindBySlug(t *testing.T) {
	catalog, _ := setupCatalogTest(t)
	ctx := context.Background()

	product, err := catalog.FindBySlug(ctx, "buzo-con-capota-hoodie-dama")
	if err != nil {
		t.Fatalf("find by slug failed: %v", err)
	}
	if product == nil || product.ID != 1 {
		t.Fatalf("unexpected product: %+v", product)
	}

	missing, err := catalog.FindBySlug(ctx, "no-existe")
	if err != nil {
		t.Fatalf("find by slug failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown slug, got %+v", missing)
	}
}

func TestCatalogOverrideTakesPrecedence(t *testing.T) {
	catalog, catalogRepo := setupCatalogTest(t)
	ctx := context.Background()

	override := []models.Product{
		{ID: 42, Name: "Camiseta edición limitada", Type: "physical", Price: models.NewMoneyFromInt(80000), Stock: 5},
	}
	if err := catalogRepo.SaveOverride(ctx, override); err != nil {
		t.Fatalf("save override failed: %v", err)
	}

	products, err := catalog.Products(ctx)
	if err != nil {
		t.Fatalf("products failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != 42 {
		t.Fatalf("expected override catalog, got %+v", products)
	}
	// slug 缺省时按名称补全
	if products[0].Slug != "camiseta-edicion-limitada" {
		t.Fatalf("expected backfilled slug, got %q", products[0].Slug)
	}
}

func TestCatalogListSearch(t *testing.T) {
	catalog, _ := setupCatalogTest(t)
	ctx := context.Background()

	results, err := catalog.List(ctx, ListProductsInput{Search: "dama"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(results) != 1 || results[0].Product.ID != 1 {
		t.Fatalf("unexpected search results: %+v", results)
	}

	results, err = catalog.List(ctx, ListProductsInput{Search: "estampado"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(results) != 1 || results[0].Product.ID != 3 {
		t.Fatalf("expected description match for digital guide, got %+v", results)
	}
}

func TestCatalogListCategoryFilter(t *testing.T) {
	catalog, _ := setupCatalogTest(t)

	results, err := catalog.List(context.Background(), ListProductsInput{Category: "Ropa"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected two products in category Ropa, got %d", len(results))
	}
	for _, r := range results {
		if r.Product.ID != 1 && r.Product.ID != 2 {
			t.Fatalf("product %d does not belong to category Ropa", r.Product.ID)
		}
	}

	digital, err := catalog.List(context.Background(), ListProductsInput{Category: "productos digitales"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(digital) != 1 || digital[0].Product.ID != 3 {
		t.Fatalf("expected case-insensitive category match, got %+v", digital)
	}
}

func TestCatalogListInStockOnly(t *testing.T) {
	store := kvstore.NewMemoryStore()
	products := seed.Products()
	for i := range products {
		if products[i].ID == 2 {
			for j := range products[i].Variants {
				products[i].Variants[j].Stock = 0
			}
		}
	}
	catalog := NewCatalogService(repository.NewCatalogRepository(store), products)

	results, err := catalog.List(context.Background(), ListProductsInput{InStockOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, r := range results {
		if r.Product.ID == 2 {
			t.Fatalf("sold-out product leaked into stock-only listing")
		}
	}
}

func TestCatalogListPriceSort(t *testing.T) {
	catalog, _ := setupCatalogTest(t)
	ctx := context.Background()

	asc, err := catalog.List(ctx, ListProductsInput{Sort: SortPriceAsc})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i].PriceFrom.LessThan(asc[i-1].PriceFrom.Decimal) {
			t.Fatalf("ascending sort violated at index %d", i)
		}
	}
	if asc[0].Product.ID != 3 {
		t.Fatalf("expected cheapest product first, got %d", asc[0].Product.ID)
	}

	desc, err := catalog.List(ctx, ListProductsInput{Sort: SortPriceDesc})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(desc); i++ {
		if desc[i].PriceTo.GreaterThan(desc[i-1].PriceTo.Decimal) {
			t.Fatalf("descending sort violated at index %d", i)
		}
	}
}

func TestCatalogSummaryPriceRange(t *testing.T) {
	catalog, _ := setupCatalogTest(t)

	results, err := catalog.List(context.Background(), ListProductsInput{Search: "dama"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected single result, got %d", len(results))
	}
	summary := results[0]
	if summary.PriceFrom.String() != "132000.00" {
		t.Fatalf("unexpected price from: %s", summary.PriceFrom)
	}
	if summary.PriceTo.String() != "149000.00" {
		t.Fatalf("unexpected price to: %s", summary.PriceTo)
	}
	if !summary.InStock {
		t.Fatalf("expected product in stock")
	}
}
