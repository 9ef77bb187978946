package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique-backend/internal/catalog"
	"boutique-backend/internal/outfits"
	"boutique-backend/internal/services/health"
	"boutique-backend/internal/shared/config"
	"boutique-backend/internal/shared/metrics"
	"boutique-backend/internal/shared/server/middleware"
	"boutique-backend/internal/shared/server/respond"
)

const outfitRateLimitGroup = "OUTFIT"

// RouterDeps holds handlers used by the router.
type RouterDeps struct {
	Config         config.Config
	Health         *health.Service
	CatalogHandler *catalog.Handler
	OutfitHandler  *outfits.Handler
	Limiter        *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroup,
			Limiter:  deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				outfitRateLimitGroup: {Rate: deps.Config.OutfitRate, Burst: deps.Config.OutfitBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		st := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !st.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, st)
	})
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.OutfitHandler != nil {
		deps.OutfitHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/outfits/recommend" {
		return outfitRateLimitGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
