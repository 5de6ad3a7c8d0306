package kv

import (
	"context"
	"errors"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "product_1", doc{Name: "Sunset", Count: 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got doc
	if err := store.Get(ctx, "product_1", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Sunset" || got.Count != 3 {
		t.Errorf("Get = %+v, want {Sunset 3}", got)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = store.Set(ctx, "k", doc{Name: "first"})
	_ = store.Set(ctx, "k", doc{Name: "second"})

	var got doc
	if err := store.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "second" {
		t.Errorf("last write should win, got %q", got.Name)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	var got doc
	err := store.Get(context.Background(), "nope", &got)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get of missing key = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreGetByPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = store.Set(ctx, "product_a", doc{Name: "a"})
	_ = store.Set(ctx, "product_b", doc{Name: "b"})
	_ = store.Set(ctx, "campaign_c", doc{Name: "c"})

	values, err := store.GetByPrefix(ctx, "product_")
	if err != nil {
		t.Fatalf("GetByPrefix: %v", err)
	}
	if len(values) != 2 {
		t.Errorf("GetByPrefix returned %d entries, want 2", len(values))
	}
}

func TestMemoryStoreGetByPrefixEmpty(t *testing.T) {
	store := NewMemoryStore()

	values, err := store.GetByPrefix(context.Background(), "product_")
	if err != nil {
		t.Fatalf("empty prefix scan should not fail: %v", err)
	}
	if values == nil || len(values) != 0 {
		t.Errorf("empty prefix scan = %v, want empty non-nil slice", values)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = store.Set(ctx, "k", doc{Name: "x"})
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var got doc
	if err := store.Get(ctx, "k", &got); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}

	// Deleting an absent key is a no-op
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of absent key = %v, want nil", err)
	}
}

func TestLikePrefixEscaping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"product_", `product\_%`},
		{"campaign_", `campaign\_%`},
		{"100%", `100\%%`},
		{`a\b`, `a\\b%`},
		{"plain", "plain%"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := likePrefix(tt.input); got != tt.expected {
				t.Errorf("likePrefix(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
