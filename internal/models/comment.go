package models

import "time"

// Comment 商品评论（按商品 slug 分桶存储）
type Comment struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupportTicket 售后支持工单
type SupportTicket struct {
	Product   string    `json:"product"`
	Message   string    `json:"message"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
