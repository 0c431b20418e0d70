package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/goldenpolis/storefront/internal/models"

	"gorm.io/gorm"
)

// GormStore 基于关系库的 JSON 文档存储（sqlite/postgres）
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get 读取文档
func (s *GormStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var entry models.KVEntry
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Put 写入文档（整文档覆盖）
func (s *GormStore) Put(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var entry models.KVEntry
	err = s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.KVEntry{
			Key:       key,
			Value:     payload,
			UpdatedAt: time.Now(),
		}
		return s.db.WithContext(ctx).Create(&entry).Error
	}
	if err != nil {
		return err
	}

	entry.Value = payload
	entry.UpdatedAt = time.Now()
	return s.db.WithContext(ctx).Save(&entry).Error
}

// Delete 删除文档
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.KVEntry{}).Error
}
