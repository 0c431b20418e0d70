package models

import "github.com/goldenpolis/storefront/internal/constants"

// Variant 单个可售组合（颜色 × 款式 × 尺码）
type Variant struct {
	Color  string      `json:"color"`
	Size   string      `json:"size"`
	Design string      `json:"design,omitempty"`
	Price  Money       `json:"price"`
	Stock  int         `json:"stock"`
	Images StringArray `json:"images,omitempty"`
}

// InStock 该组合是否有库存
func (v Variant) InStock() bool {
	return v.Stock > 0
}

// Product 商品定义（目录以 JSON 文档整体存储）
type Product struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Type        string      `json:"type"` // physical / digital
	IsVariable  bool        `json:"is_variable"`
	Category    StringArray `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
	Specs       StringArray `json:"specs,omitempty"`
	Price       Money       `json:"price"`
	Stock       int         `json:"stock"`
	Images      StringArray `json:"images,omitempty"`
	Rating      int         `json:"rating,omitempty"`
	DownloadURL string      `json:"download_url,omitempty"`
	Variants    []Variant   `json:"variants,omitempty"`
}

// IsDigital 是否为数字商品
func (p *Product) IsDigital() bool {
	return p.Type == constants.ProductTypeDigital
}

// InStock 商品是否有任一可售库存
func (p *Product) InStock() bool {
	if !p.IsVariable {
		return p.Stock > 0
	}
	for _, v := range p.Variants {
		if v.InStock() {
			return true
		}
	}
	return false
}

// PriceRange 返回最低/最高售价；可变商品取所有组合的区间
func (p *Product) PriceRange() (Money, Money) {
	if !p.IsVariable || len(p.Variants) == 0 {
		return p.Price, p.Price
	}
	low := p.Variants[0].Price
	high := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price.LessThan(low.Decimal) {
			low = v.Price
		}
		if v.Price.GreaterThan(high.Decimal) {
			high = v.Price
		}
	}
	return low, high
}
