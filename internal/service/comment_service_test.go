package service

import (
	"context"
	"errors"
	"testing"

	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/repository"
	"github.com/goldenpolis/storefront/internal/seed"
)

func setupCommentTest(t *testing.T) *CommentService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	catalog := NewCatalogService(repository.NewCatalogRepository(store), seed.Products())
	return NewCommentService(repository.NewCommentRepository(store), catalog)
}

func TestCommentAddAndList(t *testing.T) {
	comments := setupCommentTest(t)
	ctx := context.Background()

	added, err := comments.Add(ctx, AddCommentInput{
		Slug:    "buzo-con-capota-hoodie-dama",
		Author:  "Carlos",
		Content: "Excelente calidad, llegó rápido.",
		Rating:  5,
	})
	if err != nil {
		t.Fatalf("add comment failed: %v", err)
	}
	if added.Author != "Carlos" || added.Rating != 5 {
		t.Fatalf("unexpected comment: %+v", added)
	}

	list, err := comments.ListBySlug(ctx, "buzo-con-capota-hoodie-dama")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].Content != "Excelente calidad, llegó rápido." {
		t.Fatalf("unexpected comments: %+v", list)
	}

	// 评论按商品隔离
	other, err := comments.ListBySlug(ctx, "buzo-con-capota-hoodie-caballero")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no comments for other product, got %d", len(other))
	}
}

func TestCommentValidation(t *testing.T) {
	comments := setupCommentTest(t)
	ctx := context.Background()

	if _, err := comments.Add(ctx, AddCommentInput{Slug: "buzo-con-capota-hoodie-dama", Author: "", Content: "hola", Rating: 3}); !errors.Is(err, ErrCommentInvalid) {
		t.Fatalf("expected invalid comment for blank author, got %v", err)
	}
	if _, err := comments.Add(ctx, AddCommentInput{Slug: "buzo-con-capota-hoodie-dama", Author: "Ana", Content: "bien", Rating: 6}); !errors.Is(err, ErrCommentInvalid) {
		t.Fatalf("expected invalid comment for rating out of range, got %v", err)
	}
	if _, err := comments.Add(ctx, AddCommentInput{Slug: "no-existe", Author: "Ana", Content: "bien", Rating: 4}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got %v", err)
	}
	if _, err := comments.ListBySlug(ctx, "no-existe"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found on list, got %v", err)
	}
}
