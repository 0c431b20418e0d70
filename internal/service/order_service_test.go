package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
	"github.com/goldenpolis/storefront/internal/seed"
)

func setupOrderTest(t *testing.T) (*OrderService, *CartService) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	catalog := NewCatalogService(repository.NewCatalogRepository(store), seed.Products())
	cart := NewCartService(repository.NewCartRepository(store), catalog)
	orders := NewOrderService(repository.NewOrderRepository(store), catalog)
	return orders, cart
}

func testCustomer() models.Customer {
	return models.Customer{
		Name:    "Laura Méndez",
		Phone:   "3001234567",
		Email:   "laura@example.com",
		Country: "Colombia",
		City:    "Bogotá",
	}
}

func TestBuildOrderEmptyCart(t *testing.T) {
	orders, _ := setupOrderTest(t)
	_, err := orders.BuildOrder(context.Background(), BuildOrderInput{Customer: testCustomer()})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestBuildOrderTotalMatchesCart(t *testing.T) {
	orders, cart := setupOrderTest(t)
	ctx := context.Background()

	if _, err := cart.Add(ctx, AddToCartInput{ProductID: 1, Quantity: 2, Choice: damaChoice("S")}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cart.Add(ctx, AddToCartInput{ProductID: 1, Quantity: 1, Choice: damaChoice("L")}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, _ := cart.List(ctx)
	cartTotal, _ := cart.Total(ctx)

	order, err := orders.BuildOrder(ctx, BuildOrderInput{
		Items:         items,
		Customer:      testCustomer(),
		PaymentMethod: "Nequi",
		ReceiptURL:    "https://files.example.com/r/1.jpg",
		Currency:      "COP",
	})
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}
	if !order.TotalAmount.Equal(cartTotal.Decimal) {
		t.Fatalf("order total %s does not match cart total %s", order.TotalAmount, cartTotal)
	}
	if order.TotalAmount.String() != "409000.00" {
		t.Fatalf("expected total 409000.00, got %s", order.TotalAmount)
	}
}

func TestBuildOrderDeepCopiesItems(t *testing.T) {
	orders, cart := setupOrderTest(t)
	ctx := context.Background()

	if _, err := cart.Add(ctx, AddToCartInput{ProductID: 1, Quantity: 1, Choice: damaChoice("S")}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items, _ := cart.List(ctx)

	order, err := orders.BuildOrder(ctx, BuildOrderInput{Items: items, Customer: testCustomer()})
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}

	items[0].Quantity = 99
	items[0].Variant.Stock = 0
	if order.Items[0].Quantity != 1 {
		t.Fatalf("order item quantity mutated: %d", order.Items[0].Quantity)
	}
	if order.Items[0].Variant.Stock != 12 {
		t.Fatalf("order variant snapshot mutated: %d", order.Items[0].Variant.Stock)
	}
}

func TestBuildOrderNumberFormat(t *testing.T) {
	orders, cart := setupOrderTest(t)
	ctx := context.Background()

	if _, err := cart.Add(ctx, AddToCartInput{ProductID: 3, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items, _ := cart.List(ctx)

	order, err := orders.BuildOrder(ctx, BuildOrderInput{Items: items, Customer: testCustomer()})
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}
	if !strings.HasPrefix(order.OrderNo, "GP") {
		t.Fatalf("unexpected order no prefix: %s", order.OrderNo)
	}
	if len(order.OrderNo) != len("GP")+14+6 {
		t.Fatalf("unexpected order no length: %s", order.OrderNo)
	}
}

func TestBuildOrderCollectsDownloadLinks(t *testing.T) {
	orders, cart := setupOrderTest(t)
	ctx := context.Background()

	if _, err := cart.Add(ctx, AddToCartInput{ProductID: 1, Quantity: 1, Choice: damaChoice("S")}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cart.Add(ctx, AddToCartInput{ProductID: 3, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items, _ := cart.List(ctx)

	order, err := orders.BuildOrder(ctx, BuildOrderInput{Items: items, Customer: testCustomer()})
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}
	if len(order.DownloadLinks) != 1 {
		t.Fatalf("expected one download link, got %v", order.DownloadLinks)
	}
	if !strings.HasSuffix(order.DownloadLinks[0], ".pdf") {
		t.Fatalf("unexpected download link: %s", order.DownloadLinks[0])
	}
}

func TestOrderPersistAndList(t *testing.T) {
	orders, cart := setupOrderTest(t)
	ctx := context.Background()

	if _, err := cart.Add(ctx, AddToCartInput{ProductID: 1, Quantity: 1, Choice: damaChoice("S")}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items, _ := cart.List(ctx)

	first, err := orders.BuildOrder(ctx, BuildOrderInput{Items: items, Customer: testCustomer()})
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}
	second, err := orders.BuildOrder(ctx, BuildOrderInput{Items: items, Customer: testCustomer()})
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}

	if err := orders.Persist(ctx, first); err != nil {
		t.Fatalf("persist failed: %v", err)
	}
	if err := orders.Persist(ctx, second); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	history, err := orders.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected two orders, got %d", len(history))
	}
	if history[0].OrderNo != first.OrderNo || history[1].OrderNo != second.OrderNo {
		t.Fatalf("orders not appended in submission order: %s, %s", history[0].OrderNo, history[1].OrderNo)
	}
}
