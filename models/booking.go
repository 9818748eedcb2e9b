package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether status is a known booking status.
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking links one event to one provider user.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	Event       string    `bson:"event" json:"event"`
	Provider    string    `bson:"provider" json:"provider"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	Date        time.Time `bson:"date" json:"date"`
	Status      string    `bson:"status" json:"status"`
	Price       float64   `bson:"price" json:"price"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingView is a booking with its references populated. Organizers see
// the provider, providers see the event.
type BookingView struct {
	Booking      `bson:",inline"`
	EventInfo    *Event       `json:"eventInfo,omitempty"`
	ProviderInfo *UserSummary `json:"providerInfo,omitempty"`
}

// BookingRequest is the payload for POST /api/bookings.
type BookingRequest struct {
	EventID     string  `json:"eventId" binding:"required"`
	ProviderID  string  `json:"providerId" binding:"required"`
	ServiceName string  `json:"serviceName" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Notes       string  `json:"notes"`
}

// BookingStatusRequest is the payload for PUT /api/bookings/:id/status.
type BookingStatusRequest struct {
	Status string `json:"status" binding:"required,bookingstatus"`
}

// PaymentIntent is the client-facing part of a created payment.
type PaymentIntent struct {
	BookingID    string `json:"bookingId"`
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
