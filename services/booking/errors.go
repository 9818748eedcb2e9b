package booking

import (
	"fmt"
	"net/http"

	"eventra/utils"
)

const (
	msgBookingNotFound  = "Booking not found"
	msgEventNotFound    = "Event not found"
	msgProviderNotFound = "Provider not found"
)

// NewTransitionError reports a status change the booking lifecycle forbids.
func NewTransitionError(from, to string) error {
	msg := fmt.Sprintf("cannot change booking status from %s to %s", from, to)
	if from == to {
		msg = fmt.Sprintf("booking is already %s", from)
	}
	return &utils.AppError{
		Code:    "invalidTransition",
		Message: msg,
		Status:  http.StatusUnprocessableEntity,
	}
}
