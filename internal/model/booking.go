package model

import "time"

// Booking represents a user's claim on some number of seats for one event.
// A user holds at most one booking per event.
type Booking struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Seats     int       `json:"seats"`
	Attended  bool      `json:"attended"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBookingParams represents parameters for creating a new booking.
type CreateBookingParams struct {
	EventID int64 `json:"event_id"`
	UserID  int64 `json:"user_id"`
	Seats   int   `json:"seats"`
}

// User is the minimal collaborator record the core needs. Account
// management lives outside this service; IsStaff is the organizer
// capability resolved by the caller.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}
