package service

import "fleet-service/internal/model"

// allowedTransitions is the booking status graph. Completed, Cancelled
// and NoShow are terminal. No operation currently moves a booking into
// InProgress; the edge is declared so the graph covers the full enum.
var allowedTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.BookingStatusScheduled:  {model.BookingStatusInProgress, model.BookingStatusCancelled},
	model.BookingStatusInProgress: {model.BookingStatusCompleted, model.BookingStatusCancelled},
	model.BookingStatusCompleted:  {},
	model.BookingStatusCancelled:  {},
	model.BookingStatusNoShow:     {},
}

// CanTransition reports whether from -> to is a legal booking status
// change. Self transitions are not legal: a terminal status stays put.
func CanTransition(from, to model.BookingStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
