package booking

import (
	"context"

	"eventra/models"
)

func (s *DefaultBookingService) withEvents(ctx context.Context, bookings []models.Booking) ([]models.BookingView, error) {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.Event)
	}
	events, err := s.Events.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Event, len(events))
	for i := range events {
		byID[events[i].ID] = &events[i]
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, models.BookingView{Booking: b, EventInfo: byID[b.Event]})
	}
	return views, nil
}

func (s *DefaultBookingService) withProviders(ctx context.Context, bookings []models.Booking) ([]models.BookingView, error) {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.Provider)
	}
	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.UserSummary, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Summary()
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, models.BookingView{Booking: b, ProviderInfo: byID[b.Provider]})
	}
	return views, nil
}
