package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"eventra/middleware"
	"eventra/models"
	"eventra/services/provider"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves /api/providers.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// UpsertProfileHandler handles POST /api/providers/profile.
func (h *ProviderHandler) UpsertProfileHandler(c *gin.Context) {
	var req models.ProviderProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.Service.UpsertProfile(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetOwnProfileHandler handles GET /api/providers/profile/me.
func (h *ProviderHandler) GetOwnProfileHandler(c *gin.Context) {
	profile, err := h.Service.GetOwnProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProvidersHandler handles GET /api/providers with optional
// category, location and minRating filters.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	criteria := models.ProviderSearchCriteria{
		Category: strings.TrimSpace(c.Query("category")),
		Location: strings.TrimSpace(c.Query("location")),
	}
	if raw := c.Query("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minRating must be a number"})
			return
		}
		criteria.MinRating = minRating
	}

	profiles, err := h.Service.ListProviders(c.Request.Context(), criteria)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProviderHandler handles GET /api/providers/:id.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	profile, err := h.Service.GetProviderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddPortfolioHandler handles POST /api/providers/profile/portfolio.
func (h *ProviderHandler) AddPortfolioHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		getLogger(c).Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	profile, err := h.Service.AddPortfolioMedia(c.Request.Context(), middleware.UserID(c), file, c.PostForm("type"), c.PostForm("description"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
