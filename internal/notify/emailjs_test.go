package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goldenpolis/storefront/internal/config"
)

func TestEmailJSNotifierSend(t *testing.T) {
	var got emailJSRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("unmarshal request failed: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier, err := NewEmailJSNotifier(config.EmailJSConfig{
		Endpoint:  server.URL,
		ServiceID: "service_gp",
		UserID:    "user_gp",
	})
	if err != nil {
		t.Fatalf("create notifier failed: %v", err)
	}

	vars := map[string]string{
		"to_name":  "Ana",
		"to_email": "ana@example.com",
		"message":  "Resumen del pedido",
	}
	if err := notifier.Send(context.Background(), "template_customer_order", vars); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if got.ServiceID != "service_gp" || got.TemplateID != "template_customer_order" || got.UserID != "user_gp" {
		t.Fatalf("unexpected request envelope: %+v", got)
	}
	if got.TemplateParams["to_email"] != "ana@example.com" {
		t.Fatalf("unexpected template params: %v", got.TemplateParams)
	}
}

func TestEmailJSNotifierRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid template"))
	}))
	defer server.Close()

	notifier, err := NewEmailJSNotifier(config.EmailJSConfig{
		Endpoint:  server.URL,
		ServiceID: "service_gp",
		UserID:    "user_gp",
	})
	if err != nil {
		t.Fatalf("create notifier failed: %v", err)
	}
	err = notifier.Send(context.Background(), "bad_template", map[string]string{})
	if !errors.Is(err, ErrSendRejected) {
		t.Fatalf("expected rejection error, got %v", err)
	}
}

func TestEmailJSNotifierConfigValidation(t *testing.T) {
	_, err := NewEmailJSNotifier(config.EmailJSConfig{Endpoint: "https://api.emailjs.com"})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected config error, got %v", err)
	}
}
