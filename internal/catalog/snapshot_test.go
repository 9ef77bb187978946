package catalog

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique-backend/internal/shared/storage/object"
	"boutique-backend/internal/shared/storage/object/local"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func TestSnapshotRoundTripThroughLocalStore(t *testing.T) {
	store := local.New(t.TempDir())
	ctx := context.Background()

	items, err := SeedItems()
	require.NoError(t, err)

	n, err := ExportSnapshot(ctx, store, "catalog/items.json", items)
	require.NoError(t, err)
	assert.Positive(t, n)

	repo, err := LoadSnapshot(ctx, store, "catalog/items.json")
	require.NoError(t, err)
	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, all)
}

func TestLoadSnapshotMissingKey(t *testing.T) {
	store := local.New(t.TempDir())
	_, err := LoadSnapshot(context.Background(), store, "catalog/none.json")
	assert.ErrorIs(t, err, object.ErrNotFound)
}
