package service

import (
	"testing"

	"github.com/goldenpolis/storefront/internal/config"
)

func testPaymentConfig() config.PaymentConfig {
	return config.PaymentConfig{
		Methods: []config.PaymentMethodConfig{
			{Key: "nequi", Name: "Nequi", Number: "3123675535"},
			{Key: "daviplata", Name: "Daviplata", Number: "3174369474"},
		},
	}
}

func TestPaymentMethodFindByKey(t *testing.T) {
	payments := NewPaymentMethodService(testPaymentConfig())

	method, ok := payments.FindByKey("nequi")
	if !ok || method.Name != "Nequi" {
		t.Fatalf("expected Nequi, got %+v ok=%v", method, ok)
	}

	// 键不区分大小写、容忍空白
	method, ok = payments.FindByKey("  DAVIPLATA ")
	if !ok || method.Name != "Daviplata" {
		t.Fatalf("expected Daviplata, got %+v ok=%v", method, ok)
	}

	if _, ok := payments.FindByKey("bitcoin"); ok {
		t.Fatalf("expected unknown method miss")
	}
}

func TestPaymentMethodListIsCopy(t *testing.T) {
	payments := NewPaymentMethodService(testPaymentConfig())

	list := payments.List()
	if len(list) != 2 {
		t.Fatalf("expected two methods, got %d", len(list))
	}
	list[0].Name = "mutated"

	method, _ := payments.FindByKey("nequi")
	if method.Name != "Nequi" {
		t.Fatalf("internal state mutated through List copy")
	}
}
