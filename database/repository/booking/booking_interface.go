package bookingRepo

import (
	"context"

	"eventra/models"
)

// BookingRepository defines data access for bookings.
// GetByID returns (nil, nil) when the booking does not exist.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByProvider lists bookings assigned to the provider, newest first.
	GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	// GetByEvents lists bookings for any of the events, newest first.
	GetByEvents(ctx context.Context, eventIDs []string) ([]models.Booking, error)
	// ExistsForProviderOnEvent reports whether the provider holds a booking on
	// the event that has not been cancelled.
	ExistsForProviderOnEvent(ctx context.Context, providerID, eventID string) (bool, error)
	// UpdateStatus moves the booking from one status to another. It returns
	// (nil, nil) when the booking is no longer in the expected status.
	UpdateStatus(ctx context.Context, id, from, to string) (*models.Booking, error)
	DeleteByProvider(ctx context.Context, providerID string) (int64, error)
	DeleteByEvents(ctx context.Context, eventIDs []string) (int64, error)
}
