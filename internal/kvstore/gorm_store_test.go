package kvstore

import (
	"context"
	"testing"

	"github.com/goldenpolis/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupGormStoreTest(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("migrate kv_entries failed: %v", err)
	}
	return NewGormStore(db)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := setupGormStoreTest(t)
	ctx := context.Background()

	type doc struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}

	found, err := store.Get(ctx, "missing", &doc{})
	if err != nil {
		t.Fatalf("get missing key failed: %v", err)
	}
	if found {
		t.Fatalf("expected missing key to report not found")
	}

	original := doc{Name: "cart", Count: 3, Tags: []string{"a", "b"}}
	if err := store.Put(ctx, "cart", original); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var loaded doc
	found, err = store.Get(ctx, "cart", &loaded)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found {
		t.Fatalf("expected key to exist")
	}
	if loaded.Name != original.Name || loaded.Count != original.Count || len(loaded.Tags) != 2 {
		t.Fatalf("unexpected round trip result: %+v", loaded)
	}
}

func TestGormStoreOverwrite(t *testing.T) {
	store := setupGormStoreTest(t)
	ctx := context.Background()

	if err := store.Put(ctx, "orders", []int{1, 2}); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if err := store.Put(ctx, "orders", []int{1, 2, 3}); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	var loaded []int
	if _, err := store.Get(ctx, "orders", &loaded); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected overwritten document, got %v", loaded)
	}
}

func TestGormStoreDelete(t *testing.T) {
	store := setupGormStoreTest(t)
	ctx := context.Background()

	if err := store.Put(ctx, "cart", map[string]int{"n": 1}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Delete(ctx, "cart"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var loaded map[string]int
	found, err := store.Get(ctx, "cart", &loaded)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if found {
		t.Fatalf("expected key to be deleted")
	}

	// 删除不存在的键应静默成功
	if err := store.Delete(ctx, "cart"); err != nil {
		t.Fatalf("delete missing key failed: %v", err)
	}
}
