package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitOutfitGroupStricterThanDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	groupFor := func(c *gin.Context) string {
		if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/outfits/recommend" {
			return "OUTFIT"
		}
		return ""
	}

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		GroupFor: groupFor,
		Limiter:  limiter,
		Rules: map[string]RateLimitRule{
			"OUTFIT": {Rate: 0.5, Burst: 2},
		},
	}))
	r.GET("/api/v1/catalog/items", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/api/v1/outfits/recommend", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 10; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/items", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("catalog request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/outfits/recommend", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("outfit request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/outfits/recommend", nil))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("outfit request 3 expected 429, got %d", resp.Code)
	}

	now = now.Add(2 * time.Second)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/outfits/recommend", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected refill after 2s, got %d", resp.Code)
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		DefaultGroup: "DEFAULT",
		Limiter:      limiter,
		Rules: map[string]RateLimitRule{
			"DEFAULT": {Rate: 1, Burst: 1},
		},
	}))
	r.GET("/api/v1/limited", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	resp1 := httptest.NewRecorder()
	r.ServeHTTP(resp1, httptest.NewRequest(http.MethodGet, "/api/v1/limited", nil))
	if resp1.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", resp1.Code)
	}

	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, httptest.NewRequest(http.MethodGet, "/api/v1/limited", nil))
	if resp2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp2.Code)
	}
	if resp2.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After 1, got %q", resp2.Header().Get("Retry-After"))
	}

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "rate_limited" {
		t.Fatalf("expected code rate_limited, got %q", payload.Error.Code)
	}
	if payload.Error.Details["retryAfterMs"] != float64(1000) {
		t.Fatalf("expected retryAfterMs=1000, got %v", payload.Error.Details["retryAfterMs"])
	}
}

func TestRateLimiterIgnoresDisabledRule(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 5; i++ {
		if ok, _ := limiter.Allow("k", RateLimitRule{Rate: 0, Burst: 0}); !ok {
			t.Fatalf("expected disabled rule to allow request %d", i+1)
		}
	}
}

func TestRateLimiterDropsRefilledBuckets(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 0.5, Burst: 2}

	for i := 0; i < 50000; i++ {
		if ok, _ := limiter.Allow("10.0.0."+strconv.Itoa(i)+"|OUTFIT", rule); !ok {
			t.Fatalf("first request for key %d should pass", i)
		}
	}
	// Drain one key so it is still refilling at the next sweep.
	limiter.Allow("busy|OUTFIT", rule)
	limiter.Allow("busy|OUTFIT", rule)
	if got := limiter.Len(); got != 50001 {
		t.Fatalf("expected 50001 buckets before sweep, got %d", got)
	}

	now = now.Add(sweepInterval)
	limiter.Allow("late|OUTFIT", rule)
	if got := limiter.Len(); got != 1 {
		t.Fatalf("expected only the new bucket after sweep, got %d", got)
	}

	now = now.Add(24 * time.Hour)
	limiter.Allow("late|OUTFIT", rule)
	if got := limiter.Len(); got != 1 {
		t.Fatalf("expected refilled bucket to be replaced, got %d", got)
	}
}

func TestRateLimiterKeepsRefillingBucketsAcrossSweep(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 0.01, Burst: 1}

	if ok, _ := limiter.Allow("a|OUTFIT", rule); !ok {
		t.Fatalf("first request should pass")
	}
	now = now.Add(sweepInterval)
	ok, retry := limiter.Allow("a|OUTFIT", rule)
	if ok || retry <= 0 {
		t.Fatalf("expected bucket to survive sweep and still deny, got ok=%v retry=%v", ok, retry)
	}
}
