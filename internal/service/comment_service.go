package service

import (
	"context"
	"strings"
	"time"

	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
)

// AddCommentInput 发表评论输入
type AddCommentInput struct {
	Slug    string
	Author  string
	Content string
	Rating  int
}

// CommentService 商品评论服务
type CommentService struct {
	commentRepo repository.CommentRepository
	catalog     *CatalogService
}

// NewCommentService 创建评论服务
func NewCommentService(commentRepo repository.CommentRepository, catalog *CatalogService) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		catalog:     catalog,
	}
}

// ListBySlug 获取商品评论
func (s *CommentService) ListBySlug(ctx context.Context, slug string) ([]models.Comment, error) {
	product, err := s.catalog.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.commentRepo.ListBySlug(ctx, slug)
}

// Add 发表评论
func (s *CommentService) Add(ctx context.Context, input AddCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(input.Author) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrCommentInvalid
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, ErrCommentInvalid
	}
	product, err := s.catalog.FindBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	comment := models.Comment{
		Author:    strings.TrimSpace(input.Author),
		Content:   strings.TrimSpace(input.Content),
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Append(ctx, product.Slug, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
