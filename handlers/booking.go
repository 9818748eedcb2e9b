package handlers

import (
	"net/http"

	"eventra/middleware"
	"eventra/models"
	"eventra/services/booking"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves /api/bookings.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.CreateBooking(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		getLogger(c).Info("Booking rejected", zap.String("eventID", req.EventID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), middleware.UserID(c), middleware.Role(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatusHandler handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var req models.BookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.UpdateStatus(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PaymentIntentHandler handles POST /api/bookings/:id/payment-intent.
func (h *BookingHandler) PaymentIntentHandler(c *gin.Context) {
	intent, err := h.Service.CreatePaymentIntent(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}
