package booking

import (
	"context"

	bookingRepo "eventra/database/repository/booking"
	eventRepo "eventra/database/repository/event"
	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/services/notification"
	"eventra/services/payment"
)

type BookingService interface {
	CreateBooking(ctx context.Context, organizerID string, req models.BookingRequest) (*models.Booking, error)
	// ListBookings returns the caller's bookings: assigned ones for providers,
	// the ones on their events for organizers.
	ListBookings(ctx context.Context, userID, role string) ([]models.BookingView, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*models.BookingView, error)
	UpdateStatus(ctx context.Context, userID, bookingID, status string) (*models.Booking, error)
	CreatePaymentIntent(ctx context.Context, userID, bookingID string) (*models.PaymentIntent, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Events   eventRepo.EventRepository
	Users    userRepo.UserRepository
	Notifier notification.Notifier
	Payments payment.Gateway
	Currency string
}

// NewDefaultBookingService wires the service. payments may be nil when
// payments are not configured.
func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	events eventRepo.EventRepository,
	users userRepo.UserRepository,
	notifier notification.Notifier,
	payments payment.Gateway,
	currency string,
) *DefaultBookingService {
	if notifier == nil {
		notifier = notification.LogNotifier{}
	}
	if currency == "" {
		currency = "usd"
	}
	return &DefaultBookingService{
		Bookings: bookings,
		Events:   events,
		Users:    users,
		Notifier: notifier,
		Payments: payments,
		Currency: currency,
	}
}
