package handlers

import (
	"net/http"

	"eventra/models"
	"eventra/services/ai"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// AIHandler serves the planning assistant under /api/ai.
type AIHandler struct {
	Service ai.PlannerService
}

func NewAIHandler(svc ai.PlannerService) *AIHandler {
	return &AIHandler{Service: svc}
}

// SuggestServicesHandler handles POST /api/ai/suggest-services.
func (h *AIHandler) SuggestServicesHandler(c *gin.Context) {
	var req models.SuggestServicesRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": h.Service.SuggestServices(req)})
}

// MatchProvidersHandler handles POST /api/ai/match-providers.
func (h *AIHandler) MatchProvidersHandler(c *gin.Context) {
	var req models.MatchProvidersRequest
	if !bindJSON(c, &req) {
		return
	}
	providers, err := h.Service.MatchProviders(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// OptimizeBudgetHandler handles POST /api/ai/optimize-budget.
func (h *AIHandler) OptimizeBudgetHandler(c *gin.Context) {
	var req models.OptimizeBudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.Service.OptimizeBudget(c.Request.Context(), req))
}

// TimelineHandler handles POST /api/ai/timeline.
func (h *AIHandler) TimelineHandler(c *gin.Context) {
	var req models.TimelineRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": h.Service.GenerateTimeline(req)})
}
