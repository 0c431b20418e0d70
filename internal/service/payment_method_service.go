package service

import (
	"strings"

	"github.com/goldenpolis/storefront/internal/config"
)

// PaymentMethodService 支付方式目录（来自配置，例如 Nequi / Daviplata）
type PaymentMethodService struct {
	methods []config.PaymentMethodConfig
}

// NewPaymentMethodService 创建支付方式服务
func NewPaymentMethodService(cfg config.PaymentConfig) *PaymentMethodService {
	return &PaymentMethodService{methods: cfg.Methods}
}

// List 返回全部可用支付方式
func (s *PaymentMethodService) List() []config.PaymentMethodConfig {
	result := make([]config.PaymentMethodConfig, len(s.methods))
	copy(result, s.methods)
	return result
}

// FindByKey 按键查找支付方式
func (s *PaymentMethodService) FindByKey(key string) (*config.PaymentMethodConfig, bool) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for i := range s.methods {
		if strings.ToLower(s.methods[i].Key) == normalized {
			method := s.methods[i]
			return &method, true
		}
	}
	return nil, false
}
