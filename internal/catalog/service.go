package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Service answers catalog queries over a Repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns one page of items matching the filter. Out-of-stock items are excluded
// unless the filter asks for them.
func (s *Service) List(ctx context.Context, f Filter) (Page, error) {
	if err := normalizeFilter(&f); err != nil {
		return Page{}, err
	}
	items, err := s.Repo.All(ctx)
	if err != nil {
		return Page{}, err
	}

	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if matches(item, f) {
			matched = append(matched, item)
		}
	}
	sortItems(matched, f.Sort)

	page := Page{Items: []Item{}, Total: len(matched), Limit: f.Limit, Offset: f.Offset}
	if f.Offset >= len(matched) {
		return page, nil
	}
	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	page.Items = matched[f.Offset:end]
	return page, nil
}

// Get returns a single item or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// Categories returns the distinct categories, sorted.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for _, item := range items {
		c := strings.ToLower(strings.TrimSpace(item.Category))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// Describe returns the known items for ids, in the order given. Unknown ids are skipped.
func (s *Service) Describe(ctx context.Context, ids []string) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}
	items, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func normalizeFilter(f *Filter) error {
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.Color = strings.ToLower(strings.TrimSpace(f.Color))
	f.Size = strings.ToUpper(strings.TrimSpace(f.Size))
	f.Sort = strings.ToLower(strings.TrimSpace(f.Sort))

	switch f.Sort {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortName:
	default:
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidFilter, f.Sort)
	}
	if f.MinPriceCents < 0 || f.MaxPriceCents < 0 {
		return fmt.Errorf("%w: price bounds must be non-negative", ErrInvalidFilter)
	}
	if f.MaxPriceCents > 0 && f.MinPriceCents > f.MaxPriceCents {
		return fmt.Errorf("%w: minPrice exceeds maxPrice", ErrInvalidFilter)
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return nil
}

func matches(item Item, f Filter) bool {
	if !f.IncludeOutOfStock && !item.InStock {
		return false
	}
	if f.Category != "" && strings.ToLower(item.Category) != f.Category {
		return false
	}
	if f.Color != "" && strings.ToLower(item.Color) != f.Color {
		return false
	}
	if f.Size != "" && !hasSize(item.Sizes, f.Size) {
		return false
	}
	if f.MinPriceCents > 0 && item.PriceCents < f.MinPriceCents {
		return false
	}
	if f.MaxPriceCents > 0 && item.PriceCents > f.MaxPriceCents {
		return false
	}
	if f.Query != "" {
		haystack := strings.ToLower(item.Name + " " + item.Description + " " + item.Category + " " + item.Color)
		for _, term := range strings.Fields(f.Query) {
			if !strings.Contains(haystack, term) {
				return false
			}
		}
	}
	return true
}

func hasSize(sizes []string, want string) bool {
	for _, s := range sizes {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return true
		}
	}
	return false
}

func sortItems(items []Item, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PriceCents < items[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PriceCents > items[j].PriceCents })
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	}
}
