package service

import (
	"errors"
	"testing"

	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/seed"
)

func hoodieDama(t *testing.T) *models.Product {
	t.Helper()
	products := seed.Products()
	for i := range products {
		if products[i].ID == 1 {
			return &products[i]
		}
	}
	t.Fatalf("seed product 1 missing")
	return nil
}

func TestVariantSelectionColors(t *testing.T) {
	vs := NewVariantSelection(hoodieDama(t))
	colors := vs.Colors()
	expected := []string{"Blanco", "Negro", "Gris"}
	if len(colors) != len(expected) {
		t.Fatalf("unexpected colors: %v", colors)
	}
	for i, c := range expected {
		if colors[i] != c {
			t.Fatalf("color[%d]=%s expected=%s", i, colors[i], c)
		}
	}
}

func TestVariantSelectionNarrowing(t *testing.T) {
	vs := NewVariantSelection(hoodieDama(t))

	if designs := vs.Designs(); designs != nil {
		t.Fatalf("designs before color selection should be nil, got %v", designs)
	}
	if sizes := vs.Sizes(); sizes != nil {
		t.Fatalf("sizes before color selection should be nil, got %v", sizes)
	}

	if err := vs.SelectColor("Negro"); err != nil {
		t.Fatalf("select color failed: %v", err)
	}
	designs := vs.Designs()
	if len(designs) != 1 || designs[0] != "Estrellas" {
		t.Fatalf("unexpected designs for Negro: %v", designs)
	}

	if err := vs.SelectDesign("Estrellas"); err != nil {
		t.Fatalf("select design failed: %v", err)
	}
	sizes := vs.Sizes()
	if len(sizes) != 4 {
		t.Fatalf("expected 4 sizes, got %v", sizes)
	}
}

func TestVariantSelectionColorChangeResetsDownstream(t *testing.T) {
	vs := NewVariantSelection(hoodieDama(t))
	if err := vs.SelectColor("Blanco"); err != nil {
		t.Fatalf("select color failed: %v", err)
	}
	if err := vs.SelectDesign("Corazón y amor"); err != nil {
		t.Fatalf("select design failed: %v", err)
	}
	if err := vs.SelectSize("M"); err != nil {
		t.Fatalf("select size failed: %v", err)
	}

	if err := vs.SelectColor("Gris"); err != nil {
		t.Fatalf("re-select color failed: %v", err)
	}
	if vs.Design() != "" || vs.Size() != "" {
		t.Fatalf("expected design and size reset, got design=%q size=%q", vs.Design(), vs.Size())
	}
	if _, err := vs.Resolve(); !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("expected incomplete selection after reset, got %v", err)
	}
}

func TestVariantSelectionOutOfStockSizeListed(t *testing.T) {
	product := hoodieDama(t)
	// 将一个尺码库存清零
	for i := range product.Variants {
		if product.Variants[i].Color == "Gris" && product.Variants[i].Size == "XS" {
			product.Variants[i].Stock = 0
		}
	}
	vs := NewVariantSelection(product)
	if err := vs.SelectColor("Gris"); err != nil {
		t.Fatalf("select color failed: %v", err)
	}
	if err := vs.SelectDesign("Amor"); err != nil {
		t.Fatalf("select design failed: %v", err)
	}
	sizes := vs.Sizes()
	var found bool
	for _, s := range sizes {
		if s.Size == "XS" {
			found = true
			if s.InStock {
				t.Fatalf("expected XS to be flagged out of stock")
			}
		}
	}
	if !found {
		t.Fatalf("expected zero-stock size to remain listed, got %v", sizes)
	}
	// 零库存尺码仍可被选中并解析（加入购物车时才拒绝）
	if err := vs.SelectSize("XS"); err != nil {
		t.Fatalf("selecting listed zero-stock size failed: %v", err)
	}
	variant, err := vs.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if variant.Stock != 0 {
		t.Fatalf("expected resolved variant stock 0, got %d", variant.Stock)
	}
}

func TestVariantSelectionResolve(t *testing.T) {
	vs := NewVariantSelection(hoodieDama(t))
	if err := vs.SelectColor("Blanco"); err != nil {
		t.Fatalf("select color failed: %v", err)
	}
	if err := vs.SelectDesign("Corazón y amor"); err != nil {
		t.Fatalf("select design failed: %v", err)
	}
	if err := vs.SelectSize("S"); err != nil {
		t.Fatalf("select size failed: %v", err)
	}
	variant, err := vs.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if variant.Price.String() != "135000.00" {
		t.Fatalf("unexpected resolved price: %s", variant.Price)
	}
	if variant.Stock != 12 {
		t.Fatalf("unexpected resolved stock: %d", variant.Stock)
	}
}

func TestVariantSelectionInvalidChoices(t *testing.T) {
	vs := NewVariantSelection(hoodieDama(t))
	if err := vs.SelectColor("Rojo"); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected invalid selection for unknown color, got %v", err)
	}
	if err := vs.SelectDesign("Estrellas"); !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("expected incomplete selection without color, got %v", err)
	}
	if err := vs.SelectSize("M"); !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("expected incomplete selection without prior axes, got %v", err)
	}

	if err := vs.SelectColor("Negro"); err != nil {
		t.Fatalf("select color failed: %v", err)
	}
	if err := vs.SelectDesign("Amor"); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected invalid design for Negro, got %v", err)
	}
}

func TestVariantSelectionDesignAxisPerColor(t *testing.T) {
	// 只有部分颜色带款式：无款式的颜色不要求选择款式
	product := &models.Product{
		ID:         9,
		Name:       "Gorra Urbana",
		Type:       "physical",
		IsVariable: true,
		Variants: []models.Variant{
			{Color: "Blanco", Size: "S", Design: "Amor", Price: models.NewMoneyFromInt(50000), Stock: 4},
			{Color: "Negro", Size: "S", Price: models.NewMoneyFromInt(48000), Stock: 6},
		},
	}

	vs := NewVariantSelection(product)
	if err := vs.SelectColor("Negro"); err != nil {
		t.Fatalf("select color failed: %v", err)
	}
	sizes := vs.Sizes()
	if len(sizes) != 1 || sizes[0].Size != "S" {
		t.Fatalf("expected size S offered for design-free color, got %v", sizes)
	}
	if err := vs.SelectSize("S"); err != nil {
		t.Fatalf("select size failed: %v", err)
	}
	variant, err := vs.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if variant.Stock != 6 {
		t.Fatalf("unexpected resolved stock: %d", variant.Stock)
	}

	// 切到带款式的颜色后仍需先选款式
	if err := vs.SelectColor("Blanco"); err != nil {
		t.Fatalf("re-select color failed: %v", err)
	}
	if sizes := vs.Sizes(); sizes != nil {
		t.Fatalf("sizes before design selection should be nil, got %v", sizes)
	}
	if err := vs.SelectSize("S"); !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("expected incomplete selection without design, got %v", err)
	}
}

func TestVariantSelectionFixedProductUnresolvable(t *testing.T) {
	products := seed.Products()
	var digital *models.Product
	for i := range products {
		if !products[i].IsVariable {
			digital = &products[i]
			break
		}
	}
	if digital == nil {
		t.Fatalf("seed catalog missing fixed product")
	}
	vs := NewVariantSelection(digital)
	if _, err := vs.Resolve(); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected invalid selection for fixed product, got %v", err)
	}
}
