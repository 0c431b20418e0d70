package models

import (
	"time"

	"github.com/goldenpolis/storefront/internal/constants"
)

// VariantSnapshot 加入购物车时的组合快照
type VariantSnapshot struct {
	Color  string `json:"color"`
	Size   string `json:"size"`
	Design string `json:"design,omitempty"`
	Stock  int    `json:"stock"` // 加入时的库存上限
	Image  string `json:"image,omitempty"`
}

// CartItem 购物车行项（价格与库存均为加入时快照）
type CartItem struct {
	Key       string           `json:"key"` // 行项标识：商品ID 或 商品ID_颜色_尺码[_款式]
	ProductID uint             `json:"product_id"`
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Type      string           `json:"type"`
	UnitPrice Money            `json:"unit_price"`
	Image     string           `json:"image,omitempty"`
	Quantity  int              `json:"quantity"`
	Variant   *VariantSnapshot `json:"variant,omitempty"`
	AddedAt   time.Time        `json:"added_at"`
}

// IsDigital 是否为数字商品行项
func (i CartItem) IsDigital() bool {
	return i.Type == constants.ProductTypeDigital
}

// Subtotal 行项小计（单价 × 数量）
func (i CartItem) Subtotal() Money {
	return i.UnitPrice.MulInt(i.Quantity)
}
