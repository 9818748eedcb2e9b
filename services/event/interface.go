package event

import (
	"context"

	bookingRepo "eventra/database/repository/booking"
	chatRepo "eventra/database/repository/chat"
	eventRepo "eventra/database/repository/event"
	"eventra/models"
)

type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, req models.EventRequest) (*models.Event, error)
	GetMyEvents(ctx context.Context, organizerID string) ([]models.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*models.Event, error)
	UpdateEvent(ctx context.Context, organizerID, eventID string, req models.EventUpdateRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, organizerID, eventID string) error
	GetBudgetSummary(ctx context.Context, organizerID, eventID string) (*models.BudgetSummary, error)
}

// DefaultEventService is the production implementation.
type DefaultEventService struct {
	Events   eventRepo.EventRepository
	Bookings bookingRepo.BookingRepository
	Chats    chatRepo.ChatRepository
}

func NewDefaultEventService(events eventRepo.EventRepository, bookings bookingRepo.BookingRepository, chats chatRepo.ChatRepository) *DefaultEventService {
	return &DefaultEventService{Events: events, Bookings: bookings, Chats: chats}
}
