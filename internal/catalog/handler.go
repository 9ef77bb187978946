package catalog

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"boutique-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the catalog service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/items", h.listItems)
	rg.GET("/catalog/items/:id", h.getItem)
	rg.GET("/catalog/categories", h.listCategories)
}

func (h *Handler) listItems(c *gin.Context) {
	filter, details := parseFilter(c)
	if len(details) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid query parameters", details)
		return
	}
	page, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list catalog", nil)
		return
	}
	respond.OK(c, page)
}

func (h *Handler) getItem(c *gin.Context) {
	item, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "item not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load item", nil)
		return
	}
	respond.OK(c, item)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.Svc.Categories(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list categories", nil)
		return
	}
	respond.OK(c, gin.H{"categories": categories})
}

func parseFilter(c *gin.Context) (Filter, []map[string]string) {
	var details []map[string]string
	invalid := func(field string) {
		details = append(details, map[string]string{"field": field, "issue": "invalid"})
	}

	f := Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Color:    c.Query("color"),
		Size:     c.Query("size"),
		Sort:     c.Query("sort"),
	}
	if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
		if cents, ok := parsePriceCents(raw); ok {
			f.MinPriceCents = cents
		} else {
			invalid("minPrice")
		}
	}
	if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
		if cents, ok := parsePriceCents(raw); ok {
			f.MaxPriceCents = cents
		} else {
			invalid("maxPrice")
		}
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			f.Limit = v
		} else {
			invalid("limit")
		}
	}
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			f.Offset = v
		} else {
			invalid("offset")
		}
	}
	if raw := strings.TrimSpace(c.Query("includeOutOfStock")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.IncludeOutOfStock = v
		} else {
			invalid("includeOutOfStock")
		}
	}
	return f, details
}

// parsePriceCents converts a decimal currency amount such as "49.90" to cents.
func parsePriceCents(raw string) (int64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}
