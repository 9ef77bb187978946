package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo, err := NewSeedRepo()
	if err != nil {
		t.Fatalf("NewSeedRepo: %v", err)
	}
	r := gin.New()
	NewHandler(NewService(repo)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestListItemsHandler(t *testing.T) {
	r := newCatalogRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/items?category=shoes&sort=price_asc&maxPrice=100", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var page Page
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if page.Total != 2 || page.Items[0].ID != "shoe-002" || page.Items[1].ID != "shoe-003" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestListItemsHandlerRejectsBadQuery(t *testing.T) {
	r := newCatalogRouter(t)
	for _, target := range []string{
		"/api/v1/catalog/items?limit=abc",
		"/api/v1/catalog/items?minPrice=-3",
		"/api/v1/catalog/items?sort=random",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, w.Code)
		}
		var body map[string]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["error"]["code"] != "validation_error" {
			t.Fatalf("%s: unexpected error body %v", target, body)
		}
	}
}

func TestGetItemHandler(t *testing.T) {
	r := newCatalogRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/items/top-001", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/items/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCategoriesHandler(t *testing.T) {
	r := newCatalogRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/categories", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Categories) != 6 {
		t.Fatalf("expected 6 categories, got %v", body.Categories)
	}
}
