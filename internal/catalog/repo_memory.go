package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed seed/items.json
var seedItems []byte

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []Item
	index map[string]int
}

// NewMemoryRepo constructs a MemoryRepo holding a copy of items.
func NewMemoryRepo(items []Item) *MemoryRepo {
	r := &MemoryRepo{}
	r.Replace(items)
	return r
}

// NewSeedRepo constructs a MemoryRepo from the embedded seed catalog.
func NewSeedRepo() (*MemoryRepo, error) {
	items, err := SeedItems()
	if err != nil {
		return nil, err
	}
	return NewMemoryRepo(items), nil
}

// SeedItems decodes the embedded seed catalog.
func SeedItems() ([]Item, error) {
	return DecodeItems(bytes.NewReader(seedItems))
}

// DecodeItems reads a JSON array of items and rejects blank or duplicate ids.
func DecodeItems(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		id := strings.TrimSpace(items[i].ID)
		if id == "" {
			return nil, fmt.Errorf("catalog item %d has empty id", i)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("catalog item %q is duplicated", id)
		}
		seen[id] = struct{}{}
		items[i].ID = id
	}
	return items, nil
}

// Replace swaps the repo contents.
func (r *MemoryRepo) Replace(items []Item) {
	copied := make([]Item, len(items))
	copy(copied, items)
	index := make(map[string]int, len(copied))
	for i, item := range copied {
		index[item.ID] = i
	}
	r.mu.Lock()
	r.items = copied
	r.index = index
	r.mu.Unlock()
}

// All returns every item in catalog order.
func (r *MemoryRepo) All(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID returns an item by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return r.items[i], nil
}

var _ Repo = (*MemoryRepo)(nil)
