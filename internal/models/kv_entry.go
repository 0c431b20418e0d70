package models

import "time"

// KVEntry 键值存储表（所有店铺状态以 JSON 文档形式落盘）
type KVEntry struct {
	Key       string    `gorm:"primarykey" json:"key"`       // 文档键
	Value     []byte    `gorm:"type:blob" json:"value"`      // JSON 文档内容
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`     // 最近写入时间
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
