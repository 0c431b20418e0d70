package public

import (
	"io"
	"strings"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/http/response"
	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// Checkout 提交结账（multipart 表单，收据作为文件字段 receipt）
func (h *Handler) Checkout(c *gin.Context) {
	input := service.CheckoutInput{
		Customer: models.Customer{
			Name:    strings.TrimSpace(c.PostForm("name")),
			Phone:   strings.TrimSpace(c.PostForm("phone")),
			Email:   strings.TrimSpace(c.PostForm("email")),
			Country: strings.TrimSpace(c.PostForm("country")),
			City:    strings.TrimSpace(c.PostForm("city")),
		},
		PaymentMethod: strings.TrimSpace(c.PostForm("payment_method")),
	}

	fileHeader, err := c.FormFile("receipt")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			respondError(c, response.CodeBadRequest, "failed to read receipt file", openErr)
			return
		}
		defer file.Close()

		// 多读 1 字节以便让超限文件进入校验拒绝路径
		data, readErr := io.ReadAll(io.LimitReader(file, constants.ReceiptMaxSizeBytes+1))
		if readErr != nil {
			respondError(c, response.CodeBadRequest, "failed to read receipt file", readErr)
			return
		}
		input.Receipt = data
		input.ReceiptFilename = fileHeader.Filename
	}

	order, err := h.CheckoutService.Submit(c.Request.Context(), input)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order placed", order)
}

// ListOrders 获取历史订单
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}
