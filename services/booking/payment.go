package booking

import (
	"context"

	"eventra/models"
	"eventra/services/payment"
	"eventra/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// minorUnits converts a price to the smallest currency unit.
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(hundred).Round(0).IntPart()
}

// CreatePaymentIntent starts payment of a confirmed booking by its organizer.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, userID, bookingID string) (*models.PaymentIntent, error) {
	if s.Payments == nil {
		return nil, utils.NewUnavailableError("Payments are not configured")
	}
	b, ev, err := s.loadForParty(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if ev == nil || ev.Organizer != userID {
		return nil, utils.NewForbiddenError("Only the event organizer can pay for a booking")
	}
	if b.Status != models.BookingConfirmed {
		return nil, utils.NewUnprocessableError("Only confirmed bookings can be paid")
	}

	intent, err := s.Payments.CreateIntent(ctx, payment.IntentRequest{
		Amount:   minorUnits(b.Price),
		Currency: s.Currency,
		Metadata: map[string]string{"bookingId": b.ID, "eventId": b.Event},
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Payment intent created", zap.String("bookingID", b.ID), zap.String("intentID", intent.ID))
	return &models.PaymentIntent{
		BookingID:    b.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, nil
}
