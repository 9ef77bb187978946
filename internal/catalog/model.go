package catalog

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidFilter = errors.New("invalid filter")
)

// Item is a clothing product sold by the boutique.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Sizes       []string `json:"sizes"`
	PriceCents  int64    `json:"priceCents"`
	Currency    string   `json:"currency"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	InStock     bool     `json:"inStock"`
}

// Sort orders for List.
const (
	SortDefault   = ""
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Filter narrows a catalog listing. Zero values disable the corresponding filter.
type Filter struct {
	Query             string
	Category          string
	Color             string
	Size              string
	MinPriceCents     int64
	MaxPriceCents     int64
	IncludeOutOfStock bool
	Sort              string
	Limit             int
	Offset            int
}

// Page is one window of a filtered listing.
type Page struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
