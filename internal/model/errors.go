package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEventNotFound is returned when an event is not found in database.
	ErrEventNotFound = errors.New("event not found")
	// ErrBookingNotFound is returned when a booking is not found in database.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotificationNotFound is returned when a notification is not found in database.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrUserNotFound is returned when a user is not found in database.
	ErrUserNotFound = errors.New("user not found")
)

var (
	// ErrValidation is returned for malformed or out-of-range input.
	ErrValidation = errors.New("validation error")
	// ErrForbidden is returned when the actor lacks the required capability
	// or does not own the entity.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateEvent is returned when an identical event already exists.
	ErrDuplicateEvent = errors.New("such an event already exists")
	// ErrAlreadyBooked is returned when the user already holds a booking for the event.
	ErrAlreadyBooked = errors.New("you have already booked this event")
	// ErrNotEnoughSeats is returned when the requested seats exceed availability.
	ErrNotEnoughSeats = errors.New("not enough seats available")
	// ErrDeleteWindow is returned when the event deletion window has passed.
	ErrDeleteWindow = errors.New("the event can only be deleted within 1 hour after creation")
	// ErrInvalidTransition is returned on a notification status transition
	// that the state machine does not allow.
	ErrInvalidTransition = errors.New("invalid notification status transition")
)
