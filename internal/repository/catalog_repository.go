package repository

import (
	"context"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/models"
)

// CatalogRepository 商品目录覆盖文档的数据访问接口
type CatalogRepository interface {
	// LoadOverride 读取持久化的目录覆盖；第二个返回值表示覆盖是否存在
	LoadOverride(ctx context.Context) ([]models.Product, bool, error)
	SaveOverride(ctx context.Context, products []models.Product) error
}

// KVCatalogRepository 键值存储实现
type KVCatalogRepository struct {
	store kvstore.Store
}

// NewCatalogRepository 创建目录仓库
func NewCatalogRepository(store kvstore.Store) *KVCatalogRepository {
	return &KVCatalogRepository{store: store}
}

// LoadOverride 读取目录覆盖文档
func (r *KVCatalogRepository) LoadOverride(ctx context.Context) ([]models.Product, bool, error) {
	var products []models.Product
	found, err := r.store.Get(ctx, constants.StoreKeyProducts, &products)
	if err != nil {
		return nil, false, err
	}
	return products, found, nil
}

// SaveOverride 写入目录覆盖文档
func (r *KVCatalogRepository) SaveOverride(ctx context.Context, products []models.Product) error {
	return r.store.Put(ctx, constants.StoreKeyProducts, products)
}
