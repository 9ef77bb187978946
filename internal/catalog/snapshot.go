package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"boutique-backend/internal/shared/storage/object"
)

// LoadSnapshot reads a JSON catalog snapshot from the object store into a MemoryRepo.
func LoadSnapshot(ctx context.Context, store object.Store, key string) (*MemoryRepo, error) {
	rc, err := store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open catalog snapshot %s: %w", key, err)
	}
	defer rc.Close()
	items, err := DecodeItems(rc)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepo(items), nil
}

// ExportSnapshot writes items as a JSON snapshot to the object store and returns its size.
func ExportSnapshot(ctx context.Context, store object.Store, key string, items []Item) (int64, error) {
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return 0, err
	}
	n, err := store.Put(ctx, key, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("write catalog snapshot %s: %w", key, err)
	}
	return n, nil
}
