package outfits

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"boutique-backend/internal/catalog"
	"boutique-backend/internal/shared/server/respond"
	"boutique-backend/internal/shared/telemetry"
)

const maxCandidateIDs = 200

// Handler wires HTTP handlers to the outfit service.
type Handler struct {
	Svc     *Service
	Catalog ItemDescriber
}

// NewHandler constructs a Handler. catalog may be nil, in which case items are not hydrated.
func NewHandler(svc *Service, catalog ItemDescriber) *Handler {
	return &Handler{Svc: svc, Catalog: catalog}
}

// RegisterRoutes attaches outfit routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/outfits/recommend", h.recommend)
}

type recommendResponse struct {
	Recommendations []Suggestion   `json:"recommendations"`
	Reason          string         `json:"reason,omitempty"`
	Items           []catalog.Item `json:"items"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.CandidateIDs) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "candidateIds is required", []map[string]string{
			{"field": "candidateIds", "issue": "required"},
		})
		return
	}
	if len(req.CandidateIDs) > maxCandidateIDs {
		respond.Error(c, http.StatusBadRequest, "validation_error", "too many candidateIds", []map[string]string{
			{"field": "candidateIds", "issue": "too_many"},
		})
		return
	}

	result := h.Svc.Recommend(c.Request.Context(), req)
	respond.OK(c, recommendResponse{
		Recommendations: result.Recommendations,
		Reason:          result.Reason,
		Items:           h.hydrate(c, result.IDs()),
	})
}

func (h *Handler) hydrate(c *gin.Context, ids []string) []catalog.Item {
	if h.Catalog == nil || len(ids) == 0 {
		return []catalog.Item{}
	}
	items, err := h.Catalog.Describe(c.Request.Context(), ids)
	if err != nil {
		telemetry.Warn("outfit.hydrate_failed", map[string]any{
			"error":      err.Error(),
			"request_id": c.GetString("requestId"),
			"ids":        strings.Join(ids, ","),
		})
		return []catalog.Item{}
	}
	if items == nil {
		return []catalog.Item{}
	}
	return items
}
