package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedService(t *testing.T) *Service {
	t.Helper()
	repo, err := NewSeedRepo()
	require.NoError(t, err)
	return NewService(repo)
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestListDefaultsHideOutOfStock(t *testing.T) {
	svc := newSeedService(t)
	page, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, 15, page.Total)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.NotContains(t, ids(page.Items), "top-004")
	assert.NotContains(t, ids(page.Items), "acc-003")
}

func TestListFiltersAndSorts(t *testing.T) {
	svc := newSeedService(t)
	page, err := svc.List(context.Background(), Filter{Category: "Shoes", Sort: SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"shoe-002", "shoe-003", "shoe-001"}, ids(page.Items))

	page, err = svc.List(context.Background(), Filter{Category: "shoes", Sort: SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"shoe-001", "shoe-003", "shoe-002"}, ids(page.Items))

	page, err = svc.List(context.Background(), Filter{Color: "BLUE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bottom-001", "outer-001"}, ids(page.Items))

	page, err = svc.List(context.Background(), Filter{MinPriceCents: 10000, MaxPriceCents: 16000})
	require.NoError(t, err)
	assert.Equal(t, []string{"dress-002", "shoe-001"}, ids(page.Items))
}

func TestListSearch(t *testing.T) {
	svc := newSeedService(t)
	page, err := svc.List(context.Background(), Filter{Query: "silk"})
	require.NoError(t, err)
	assert.Equal(t, []string{"top-003"}, ids(page.Items))

	page, err = svc.List(context.Background(), Filter{Query: "silk", IncludeOutOfStock: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"top-003", "acc-003"}, ids(page.Items))

	page, err = svc.List(context.Background(), Filter{Query: "leather boots"})
	require.NoError(t, err)
	assert.Equal(t, []string{"shoe-001"}, ids(page.Items))
}

func TestListPagination(t *testing.T) {
	svc := newSeedService(t)

	page, err := svc.List(context.Background(), Filter{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 15, page.Total)

	page, err = svc.List(context.Background(), Filter{Limit: 5, Offset: 14})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	page, err = svc.List(context.Background(), Filter{Offset: 50})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)

	page, err = svc.List(context.Background(), Filter{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, page.Limit)
}

func TestListRejectsInvalidFilter(t *testing.T) {
	svc := newSeedService(t)
	for _, f := range []Filter{
		{Sort: "popularity"},
		{MinPriceCents: 500, MaxPriceCents: 100},
		{MinPriceCents: -1},
	} {
		_, err := svc.List(context.Background(), f)
		assert.True(t, errors.Is(err, ErrInvalidFilter), "filter %+v: %v", f, err)
	}
}

func TestGetAndCategories(t *testing.T) {
	svc := newSeedService(t)

	item, err := svc.Get(context.Background(), "dress-001")
	require.NoError(t, err)
	assert.Equal(t, "Wrap Maxi Dress", item.Name)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(context.Background(), " ")
	assert.ErrorIs(t, err, ErrNotFound)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"accessories", "bottoms", "dresses", "outerwear", "shoes", "tops"}, categories)
}

func TestDescribeKeepsOrderAndSkipsUnknown(t *testing.T) {
	svc := newSeedService(t)
	items, err := svc.Describe(context.Background(), []string{"shoe-001", "ghost", "top-004", "top-001"})
	require.NoError(t, err)
	assert.Equal(t, []string{"shoe-001", "top-004", "top-001"}, ids(items))
}

func TestDecodeItemsRejectsBadCatalog(t *testing.T) {
	_, err := DecodeItems(stringsReader(`[{"id":"a"},{"id":"a"}]`))
	assert.Error(t, err)
	_, err = DecodeItems(stringsReader(`[{"id":"  "}]`))
	assert.Error(t, err)
	_, err = DecodeItems(stringsReader(`{"id":"a"}`))
	assert.Error(t, err)
}
