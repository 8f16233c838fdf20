// Package model defines domain models and data structures.
package model

import (
	"fmt"
	"time"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	// EventStatusUpcoming marks an event that has not started yet.
	EventStatusUpcoming EventStatus = "upcoming"
	// EventStatusCancelled marks an event called off by its organizer.
	EventStatusCancelled EventStatus = "cancelled"
	// EventStatusCompleted marks an event moved past by the expiry sweep.
	EventStatusCompleted EventStatus = "completed"
)

// ParseEventStatus validates a raw status value at the boundary.
func ParseEventStatus(raw string) (EventStatus, error) {
	switch EventStatus(raw) {
	case EventStatusUpcoming, EventStatusCancelled, EventStatusCompleted:
		return EventStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown event status %q", ErrValidation, raw)
	}
}

// Event represents a bookable event created by an organizer.
//
// SeatsBooked and SeatsAvailable are derived from the event's bookings on
// every read. They are never stored on the row.
type Event struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	City           string      `json:"city"`
	StartTime      time.Time   `json:"start_time"`
	SeatsTotal     int         `json:"seats_total"`
	Status         EventStatus `json:"status"`
	OrganizerID    int64       `json:"organizer_id"`
	SeatsBooked    int         `json:"seats_booked"`
	SeatsAvailable int         `json:"seats_available"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CreateEventParams represents parameters for creating a new event.
type CreateEventParams struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	StartTime   time.Time `json:"start_time"`
	SeatsTotal  int       `json:"seats_total"`
}

// Validate validates the create event parameters against now.
func (p *CreateEventParams) Validate(now time.Time) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if p.SeatsTotal < 1 {
		return fmt.Errorf("%w: seats_total must be positive", ErrValidation)
	}
	if !p.StartTime.After(now) {
		return fmt.Errorf("%w: you can't create an event in the past", ErrValidation)
	}

	return nil
}

// EventDeleteWindow is how long after creation the organizer may still
// delete an event.
const EventDeleteWindow = time.Hour
