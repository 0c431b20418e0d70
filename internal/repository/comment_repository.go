package repository

import (
	"context"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/models"
)

// CommentRepository 商品评论数据访问接口（按商品 slug 分桶）
type CommentRepository interface {
	ListBySlug(ctx context.Context, slug string) ([]models.Comment, error)
	Append(ctx context.Context, slug string, comment models.Comment) error
}

// KVCommentRepository 键值存储实现
type KVCommentRepository struct {
	store kvstore.Store
}

// NewCommentRepository 创建评论仓库
func NewCommentRepository(store kvstore.Store) *KVCommentRepository {
	return &KVCommentRepository{store: store}
}

// ListBySlug 读取商品评论
func (r *KVCommentRepository) ListBySlug(ctx context.Context, slug string) ([]models.Comment, error) {
	var comments []models.Comment
	found, err := r.store.Get(ctx, constants.StoreKeyCommentPrefix+slug, &comments)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Comment{}, nil
	}
	return comments, nil
}

// Append 追加评论并整体写回
func (r *KVCommentRepository) Append(ctx context.Context, slug string, comment models.Comment) error {
	comments, err := r.ListBySlug(ctx, slug)
	if err != nil {
		return err
	}
	comments = append(comments, comment)
	return r.store.Put(ctx, constants.StoreKeyCommentPrefix+slug, comments)
}
