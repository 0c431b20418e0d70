package public

import (
	"strings"

	"github.com/goldenpolis/storefront/internal/http/response"
	"github.com/goldenpolis/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品列表（支持搜索、分类、仅看有货与价格排序）
func (h *Handler) GetProducts(c *gin.Context) {
	input := service.ListProductsInput{
		Search:      strings.TrimSpace(c.Query("search")),
		Category:    strings.TrimSpace(c.Query("category")),
		InStockOnly: isTruthy(c.Query("in_stock")),
		Sort:        strings.TrimSpace(c.Query("sort")),
	}

	products, err := h.CatalogService.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProductBySlug 获取商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	product, err := h.CatalogService.FindBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	if product == nil {
		response.NotFound(c, "product not found")
		return
	}
	response.Success(c, product)
}

// GetProductOptions 按已选维度返回剩余可选项。
// 查询参数 color / design / size 逐级缩小范围，尺码列表带库存标记。
func (h *Handler) GetProductOptions(c *gin.Context) {
	slug := c.Param("slug")
	product, err := h.CatalogService.FindBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	if product == nil {
		response.NotFound(c, "product not found")
		return
	}
	if !product.IsVariable {
		response.BadRequest(c, "product has no variants")
		return
	}

	selection := service.NewVariantSelection(product)
	if color := strings.TrimSpace(c.Query("color")); color != "" {
		if err := selection.SelectColor(color); err != nil {
			respondCartError(c, err)
			return
		}
	}
	if design := strings.TrimSpace(c.Query("design")); design != "" {
		if err := selection.SelectDesign(design); err != nil {
			respondCartError(c, err)
			return
		}
	}

	payload := gin.H{
		"colors":  selection.Colors(),
		"designs": selection.Designs(),
		"sizes":   selection.Sizes(),
	}

	if size := strings.TrimSpace(c.Query("size")); size != "" {
		if err := selection.SelectSize(size); err != nil {
			respondCartError(c, err)
			return
		}
		variant, err := selection.Resolve()
		if err != nil {
			respondCartError(c, err)
			return
		}
		payload["resolved"] = variant
	}

	response.Success(c, payload)
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
