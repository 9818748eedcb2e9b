package event

import (
	"context"

	"eventra/models"

	"github.com/shopspring/decimal"
)

// GetBudgetSummary sums the prices of the event's non-cancelled bookings.
func (s *DefaultEventService) GetBudgetSummary(ctx context.Context, organizerID, eventID string) (*models.BudgetSummary, error) {
	ev, err := s.ownedEvent(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.GetByEvents(ctx, []string{eventID})
	if err != nil {
		return nil, err
	}
	return summarize(ev, bookings), nil
}

func summarize(ev *models.Event, bookings []models.Booking) *models.BudgetSummary {
	committed := decimal.Zero
	active := 0
	for _, b := range bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		committed = committed.Add(decimal.NewFromFloat(b.Price))
		active++
	}
	budget := decimal.NewFromFloat(ev.Budget)
	remaining := budget.Sub(committed)

	return &models.BudgetSummary{
		EventID:   ev.ID,
		Budget:    budget.InexactFloat64(),
		Committed: committed.Round(2).InexactFloat64(),
		Remaining: remaining.Round(2).InexactFloat64(),
		Bookings:  active,
		OverSpent: remaining.IsNegative(),
	}
}
