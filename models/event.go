package models

import "time"

// Event is an occasion planned by an organizer.
type Event struct {
	ID          string    `bson:"id" json:"id"`
	Organizer   string    `bson:"organizer" json:"organizer"`
	Title       string    `bson:"title" json:"title"`
	Type        string    `bson:"type" json:"type"`
	Date        time.Time `bson:"date" json:"date"`
	Location    string    `bson:"location" json:"location"`
	GuestCount  int       `bson:"guestCount" json:"guestCount"`
	Budget      float64   `bson:"budget" json:"budget"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EventRequest is the payload for creating an event.
type EventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	GuestCount  int     `json:"guestCount" binding:"required,min=1"`
	Budget      float64 `json:"budget" binding:"min=0"`
	Description string  `json:"description"`
}

// EventUpdateRequest carries the optional fields of PUT /api/events/:id.
type EventUpdateRequest struct {
	Title       *string  `json:"title"`
	Type        *string  `json:"type"`
	Date        *string  `json:"date"`
	Location    *string  `json:"location"`
	GuestCount  *int     `json:"guestCount" binding:"omitempty,min=1"`
	Budget      *float64 `json:"budget" binding:"omitempty,min=0"`
	Description *string  `json:"description"`
}

// BudgetSummary compares an event budget with what its bookings commit.
type BudgetSummary struct {
	EventID   string  `json:"eventId"`
	Budget    float64 `json:"budget"`
	Committed float64 `json:"committed"`
	Remaining float64 `json:"remaining"`
	Bookings  int     `json:"bookings"`
	OverSpent bool    `json:"overSpent"`
}
