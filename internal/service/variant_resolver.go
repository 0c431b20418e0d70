package service

import "github.com/goldenpolis/storefront/internal/models"

// SizeOption 尺码选项（零库存尺码仍然列出，由调用方禁用）
type SizeOption struct {
	Size    string `json:"size"`
	InStock bool   `json:"in_stock"`
}

// VariantSelection 可变商品的选择过程状态。
// 选择顺序为 颜色 → 款式 → 尺码，修改靠前维度会重置其后维度。
// 每个调用方持有自己的实例，互不共享。
type VariantSelection struct {
	product *models.Product
	color   string
	design  string
	size    string
}

// NewVariantSelection 为商品创建空白选择状态
func NewVariantSelection(product *models.Product) *VariantSelection {
	return &VariantSelection{product: product}
}

// Color 当前已选颜色
func (vs *VariantSelection) Color() string { return vs.color }

// Design 当前已选款式
func (vs *VariantSelection) Design() string { return vs.design }

// Size 当前已选尺码
func (vs *VariantSelection) Size() string { return vs.size }

// Colors 按出现顺序返回去重后的颜色列表
func (vs *VariantSelection) Colors() []string {
	seen := make(map[string]bool)
	colors := make([]string, 0)
	for _, v := range vs.product.Variants {
		if !seen[v.Color] {
			seen[v.Color] = true
			colors = append(colors, v.Color)
		}
	}
	return colors
}

// Designs 返回当前颜色下的款式列表；未选颜色时为空
func (vs *VariantSelection) Designs() []string {
	if vs.color == "" {
		return nil
	}
	seen := make(map[string]bool)
	designs := make([]string, 0)
	for _, v := range vs.product.Variants {
		if v.Color != vs.color || v.Design == "" {
			continue
		}
		if !seen[v.Design] {
			seen[v.Design] = true
			designs = append(designs, v.Design)
		}
	}
	return designs
}

// Sizes 返回当前缩小范围内的尺码选项；零库存尺码带 InStock=false
func (vs *VariantSelection) Sizes() []SizeOption {
	if vs.color == "" {
		return nil
	}
	if vs.designRequired() && vs.design == "" {
		return nil
	}
	seen := make(map[string]bool)
	sizes := make([]SizeOption, 0)
	for _, v := range vs.product.Variants {
		if !vs.matchesNarrowing(v) {
			continue
		}
		if !seen[v.Size] {
			seen[v.Size] = true
			sizes = append(sizes, SizeOption{Size: v.Size, InStock: v.InStock()})
		}
	}
	return sizes
}

// SelectColor 选择颜色，并重置款式与尺码
func (vs *VariantSelection) SelectColor(color string) error {
	for _, c := range vs.Colors() {
		if c == color {
			vs.color = color
			vs.design = ""
			vs.size = ""
			return nil
		}
	}
	return ErrInvalidSelection
}

// SelectDesign 选择款式，并重置尺码；需先选颜色
func (vs *VariantSelection) SelectDesign(design string) error {
	if vs.color == "" {
		return ErrIncompleteSelection
	}
	for _, d := range vs.Designs() {
		if d == design {
			vs.design = design
			vs.size = ""
			return nil
		}
	}
	return ErrInvalidSelection
}

// SelectSize 选择尺码；需先完成前置维度的选择
func (vs *VariantSelection) SelectSize(size string) error {
	options := vs.Sizes()
	if options == nil {
		return ErrIncompleteSelection
	}
	for _, o := range options {
		if o.Size == size {
			vs.size = size
			return nil
		}
	}
	return ErrInvalidSelection
}

// Resolve 将完整选择解析为唯一组合。
// 款式维度按已选颜色判断：该颜色下存在款式时必选，否则视为通配。
// 匹配数不为 1 时解析失败。
func (vs *VariantSelection) Resolve() (*models.Variant, error) {
	if !vs.product.IsVariable || len(vs.product.Variants) == 0 {
		return nil, ErrInvalidSelection
	}
	if vs.color == "" || vs.size == "" {
		return nil, ErrIncompleteSelection
	}
	designRequired := vs.designRequired()
	if designRequired && vs.design == "" {
		return nil, ErrIncompleteSelection
	}

	var match *models.Variant
	count := 0
	for i := range vs.product.Variants {
		v := &vs.product.Variants[i]
		if v.Color != vs.color || v.Size != vs.size {
			continue
		}
		if designRequired && v.Design != vs.design {
			continue
		}
		match = v
		count++
	}
	if count != 1 {
		return nil, ErrInvalidSelection
	}
	result := *match
	return &result, nil
}

// designRequired 已选颜色下是否存在款式维度
func (vs *VariantSelection) designRequired() bool {
	for _, v := range vs.product.Variants {
		if v.Color == vs.color && v.Design != "" {
			return true
		}
	}
	return false
}

func (vs *VariantSelection) matchesNarrowing(v models.Variant) bool {
	if v.Color != vs.color {
		return false
	}
	if vs.design != "" && v.Design != vs.design {
		return false
	}
	return true
}
