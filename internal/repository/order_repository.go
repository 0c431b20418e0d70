package repository

import (
	"context"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/models"
)

// OrderRepository 订单历史数据访问接口（追加写）
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Append(ctx context.Context, order models.Order) error
}

// KVOrderRepository 键值存储实现
type KVOrderRepository struct {
	store kvstore.Store
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(store kvstore.Store) *KVOrderRepository {
	return &KVOrderRepository{store: store}
}

// List 读取全部历史订单
func (r *KVOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	found, err := r.store.Get(ctx, constants.StoreKeyOrders, &orders)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Order{}, nil
	}
	return orders, nil
}

// Append 追加一笔订单并整体写回
func (r *KVOrderRepository) Append(ctx context.Context, order models.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return r.store.Put(ctx, constants.StoreKeyOrders, orders)
}
