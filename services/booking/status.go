package booking

import (
	"context"
	"fmt"

	"eventra/models"
	"eventra/utils"

	"go.uber.org/zap"
)

type party int

const (
	partyProvider party = iota
	partyOrganizer
)

// transitions lists, per current status, the reachable statuses and who may
// move the booking there. completed and cancelled are terminal.
var transitions = map[string]map[string][]party{
	models.BookingPending: {
		models.BookingConfirmed: {partyProvider},
		models.BookingCancelled: {partyProvider, partyOrganizer},
	},
	models.BookingConfirmed: {
		models.BookingCompleted: {partyProvider},
		models.BookingCancelled: {partyProvider, partyOrganizer},
	},
}

// canTransition reports whether p may move a booking from one status to another.
func canTransition(from, to string, p party) bool {
	for _, allowed := range transitions[from][to] {
		if allowed == p {
			return true
		}
	}
	return false
}

// UpdateStatus applies a lifecycle transition and notifies the other party.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, userID, bookingID, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, utils.NewBadRequestError(fmt.Sprintf("invalid status %q", status))
	}
	b, ev, err := s.loadForParty(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	caller := partyOrganizer
	if b.Provider == userID {
		caller = partyProvider
	}
	if !canTransition(b.Status, status, caller) {
		return nil, NewTransitionError(b.Status, status)
	}

	updated, err := s.Bookings.UpdateStatus(ctx, b.ID, b.Status, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewConflictError("Booking was modified concurrently, reload and retry")
	}

	utils.GetLogger().Info("Booking status updated",
		zap.String("bookingID", b.ID),
		zap.String("from", b.Status),
		zap.String("to", status))

	recipient := b.Provider
	if caller == partyProvider && ev != nil {
		recipient = ev.Organizer
	}
	s.Notifier.Notify(ctx, models.PushNotification{
		UserID: recipient,
		Title:  "Booking " + status,
		Body:   fmt.Sprintf("%s is now %s", b.ServiceName, status),
		Data:   map[string]string{"bookingId": b.ID, "status": status},
	})
	return updated, nil
}
