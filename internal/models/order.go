package models

import "time"

// Customer 下单客户信息
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// Order 订单（不可变快照，追加存入订单历史文档）
type Order struct {
	OrderNo       string     `json:"order_no"`
	Customer      Customer   `json:"customer"`
	Items         []CartItem `json:"items"`
	TotalAmount   Money      `json:"total_amount"`
	Currency      string     `json:"currency"`
	PaymentMethod string     `json:"payment_method"`
	ReceiptURL    string     `json:"receipt_url"`
	DownloadLinks []string   `json:"download_links,omitempty"` // 数字商品下载链接
	CreatedAt     time.Time  `json:"created_at"`
}
