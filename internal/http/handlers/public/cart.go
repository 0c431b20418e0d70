package public

import (
	"github.com/goldenpolis/storefront/internal/http/response"
	"github.com/goldenpolis/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Design    string `json:"design"`
}

// UpdateCartItemRequest 调整数量请求（增量）
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart 获取购物车内容与合计
func (h *Handler) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.CartService.List(ctx)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load cart", err)
		return
	}
	total, err := h.CartService.Total(ctx)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load cart", err)
		return
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	response.Success(c, gin.H{
		"items": items,
		"total": total,
		"count": count,
	})
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	input := service.AddToCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if req.Color != "" || req.Size != "" || req.Design != "" {
		input.Choice = &service.VariantChoice{
			Color:  req.Color,
			Size:   req.Size,
			Design: req.Design,
		}
	}

	item, err := h.CartService.Add(c.Request.Context(), input)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateCartItem 按增量调整购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.CartService.UpdateQuantity(c.Request.Context(), c.Param("key"), req.Delta)
	if err != nil {
		respondCartError(c, err)
		return
	}
	if item == nil {
		// 服务层对未知行项为空操作，接口上仍返回 404
		respondCartError(c, service.ErrCartItemNotFound)
		return
	}
	response.Success(c, item)
}

// DeleteCartItem 移除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	if err := h.CartService.Remove(c.Request.Context(), c.Param("key")); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.CartService.Clear(c.Request.Context()); err != nil {
		respondError(c, response.CodeInternal, "failed to clear cart", err)
		return
	}
	response.Success(c, nil)
}
