package public

import (
	"github.com/goldenpolis/storefront/internal/http/response"
	"github.com/goldenpolis/storefront/internal/seed"

	"github.com/gin-gonic/gin"
)

// GetLocations 获取国家与城市列表（结账表单用）
func (h *Handler) GetLocations(c *gin.Context) {
	response.Success(c, gin.H{"locations": seed.Locations()})
}

// GetPaymentMethods 获取可用支付方式
func (h *Handler) GetPaymentMethods(c *gin.Context) {
	response.Success(c, gin.H{"methods": h.PaymentMethodService.List()})
}
