package handlers

import (
	"net/http"

	"eventra/middleware"
	"eventra/models"
	"eventra/services/event"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler serves /api/events.
type EventHandler struct {
	Service event.EventService
}

func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

// CreateEventHandler handles POST /api/events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var req models.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.Service.CreateEvent(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// GetMyEventsHandler handles GET /api/events/myevents.
func (h *EventHandler) GetMyEventsHandler(c *gin.Context) {
	events, err := h.Service.GetMyEvents(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventHandler handles GET /api/events/:id.
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	ev, err := h.Service.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// UpdateEventHandler handles PUT /api/events/:id.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	var req models.EventUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.Service.UpdateEvent(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// DeleteEventHandler handles DELETE /api/events/:id.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	if err := h.Service.DeleteEvent(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event removed"})
}

// BudgetSummaryHandler handles GET /api/events/:id/budget.
func (h *EventHandler) BudgetSummaryHandler(c *gin.Context) {
	summary, err := h.Service.GetBudgetSummary(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
