package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goldenpolis/storefront/internal/config"
)

// emailJSRequest EmailJS 发送请求体
type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJSNotifier 基于 EmailJS HTTP API 的通知器
type EmailJSNotifier struct {
	endpoint  string
	serviceID string
	userID    string
	client    *http.Client
}

// NewEmailJSNotifier 创建 EmailJS 通知器
func NewEmailJSNotifier(cfg config.EmailJSConfig) (*EmailJSNotifier, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" || strings.TrimSpace(cfg.ServiceID) == "" || strings.TrimSpace(cfg.UserID) == "" {
		return nil, ErrConfigInvalid
	}
	return &EmailJSNotifier{
		endpoint:  endpoint,
		serviceID: strings.TrimSpace(cfg.ServiceID),
		userID:    strings.TrimSpace(cfg.UserID),
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Send 发送模板消息
func (n *EmailJSNotifier) Send(ctx context.Context, templateID string, vars map[string]string) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      n.serviceID,
		TemplateID:     templateID,
		UserID:         n.userID,
		TemplateParams: vars,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d %s", ErrSendRejected, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
