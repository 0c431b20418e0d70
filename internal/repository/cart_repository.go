package repository

import (
	"context"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/models"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	Load(ctx context.Context) ([]models.CartItem, error)
	Save(ctx context.Context, items []models.CartItem) error
	Clear(ctx context.Context) error
}

// KVCartRepository 键值存储实现
type KVCartRepository struct {
	store kvstore.Store
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(store kvstore.Store) *KVCartRepository {
	return &KVCartRepository{store: store}
}

// Load 读取购物车；文档不存在时返回空购物车
func (r *KVCartRepository) Load(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	found, err := r.store.Get(ctx, constants.StoreKeyCart, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.CartItem{}, nil
	}
	return items, nil
}

// Save 整体写回购物车
func (r *KVCartRepository) Save(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	return r.store.Put(ctx, constants.StoreKeyCart, items)
}

// Clear 清空购物车
func (r *KVCartRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, constants.StoreKeyCart)
}
