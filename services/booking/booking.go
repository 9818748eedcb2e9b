package booking

import (
	"context"
	"fmt"
	"strings"

	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateBooking requests a provider for one of the organizer's events.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, organizerID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, utils.NewBadRequestError(err.Error())
	}
	price := decimal.NewFromFloat(req.Price).Round(2)
	if !price.IsPositive() {
		return nil, utils.NewBadRequestError("price must be greater than 0")
	}
	serviceName := strings.TrimSpace(req.ServiceName)
	if serviceName == "" {
		return nil, utils.NewBadRequestError("serviceName is required")
	}

	ev, err := s.Events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, utils.NewNotFoundError(msgEventNotFound)
	}
	if ev.Organizer != organizerID {
		return nil, utils.NewForbiddenError("Not authorized to book for this event")
	}

	prov, err := s.Users.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, utils.NewNotFoundError(msgProviderNotFound)
	}
	if prov.Role != models.RoleProvider {
		return nil, utils.NewBadRequestError("Selected user is not a provider")
	}

	b := &models.Booking{
		ID:          uuid.New().String(),
		Event:       ev.ID,
		Provider:    prov.ID,
		ServiceName: serviceName,
		Date:        date,
		Status:      models.BookingPending,
		Price:       price.InexactFloat64(),
		Notes:       req.Notes,
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("eventID", ev.ID),
		zap.String("providerID", prov.ID))

	s.Notifier.Notify(ctx, models.PushNotification{
		UserID: prov.ID,
		Title:  "New booking request",
		Body:   fmt.Sprintf("%s for %s on %s", serviceName, ev.Title, date.Format("2006-01-02")),
		Data:   map[string]string{"bookingId": b.ID, "eventId": ev.ID},
	})
	return b, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, userID, role string) ([]models.BookingView, error) {
	switch role {
	case models.RoleProvider:
		bookings, err := s.Bookings.GetByProvider(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.withEvents(ctx, bookings)
	case models.RoleOrganizer:
		eventIDs, err := s.Events.IDsByOrganizer(ctx, userID)
		if err != nil {
			return nil, err
		}
		bookings, err := s.Bookings.GetByEvents(ctx, eventIDs)
		if err != nil {
			return nil, err
		}
		return s.withProviders(ctx, bookings)
	default:
		return nil, utils.NewForbiddenError("Unknown role")
	}
}

// GetBooking returns a booking to its provider or to the event organizer.
func (s *DefaultBookingService) GetBooking(ctx context.Context, userID, bookingID string) (*models.BookingView, error) {
	b, ev, err := s.loadForParty(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	view := &models.BookingView{Booking: *b, EventInfo: ev}
	providers, err := s.Users.GetByIDs(ctx, []string{b.Provider})
	if err != nil {
		return nil, err
	}
	if len(providers) == 1 {
		view.ProviderInfo = providers[0].Summary()
	}
	return view, nil
}

// loadForParty loads the booking and its event, rejecting callers that are
// neither the provider nor the organizer.
func (s *DefaultBookingService) loadForParty(ctx context.Context, userID, bookingID string) (*models.Booking, *models.Event, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, utils.NewNotFoundError(msgBookingNotFound)
	}
	ev, err := s.Events.GetByID(ctx, b.Event)
	if err != nil {
		return nil, nil, err
	}
	if b.Provider != userID && (ev == nil || ev.Organizer != userID) {
		return nil, nil, utils.NewForbiddenError("Not authorized to access this booking")
	}
	return b, ev, nil
}
