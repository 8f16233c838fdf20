// Package handler exposes the catalog, ledger and notification operations
// over REST-ish routes with JSON bodies. Authentication happens upstream; the
// already-validated actor arrives as the X-User-ID header and is resolved to
// a user record here.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/repository"
	"github.com/osokin/eventbook/internal/service"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	events        service.EventService
	bookings      service.BookingService
	notifications service.NotificationService
	users         repository.UserRepository
	logger        *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	events service.EventService,
	bookings service.BookingService,
	notifications service.NotificationService,
	users repository.UserRepository,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		events:        events,
		bookings:      bookings,
		notifications: notifications,
		users:         users,
		logger:        logger,
	}
}

// Routes mounts all API routes on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Get("/available", h.ListAvailableEvents)
		r.Post("/", h.CreateEvent)
		r.Get("/{id}", h.GetEvent)
		r.Patch("/{id}/status", h.UpdateEventStatus)
		r.Delete("/{id}", h.DeleteEvent)
		r.Post("/{id}/bookings", h.CreateBooking)
		r.Delete("/{id}/bookings", h.CancelBooking)
	})
	r.Route("/me", func(r chi.Router) {
		r.Get("/events", h.ListMyEvents)
		r.Get("/notifications", h.ListMyNotifications)
		r.Post("/notifications/{id}/read", h.MarkNotificationRead)
	})
}

type createEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	StartTime   time.Time `json:"start_time"`
	SeatsTotal  int       `json:"seats_total"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type createBookingRequest struct {
	Seats int `json:"seats"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListEvents returns all events in the canonical order.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListOrdered(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

// ListAvailableEvents returns upcoming events with free seats.
func (h *Handler) ListAvailableEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.bookings.AvailableEvents(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

// GetEvent returns a single event.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, event)
}

// CreateEvent creates an event for the acting organizer.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	event, err := h.events.Create(r.Context(), &model.CreateEventParams{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		StartTime:   req.StartTime,
		SeatsTotal:  req.SeatsTotal,
	}, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, event)
}

// UpdateEventStatus changes the status of an event owned by the actor.
func (h *Handler) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	event, err := h.events.UpdateStatus(r.Context(), id, req.Status, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, event)
}

// DeleteEvent removes an event owned by the actor.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.events.Delete(r.Context(), id, actor); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateBooking books seats on the event for the actor.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req := createBookingRequest{Seats: 1}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
			return
		}
	}

	booking, err := h.bookings.Create(r.Context(), actor, id, req.Seats)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, booking)
}

// CancelBooking cancels the actor's booking on the event.
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.bookings.Cancel(r.Context(), actor, id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMyEvents returns the actor's upcoming booked events.
func (h *Handler) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	events, err := h.bookings.UpcomingForUser(r.Context(), actor)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

// ListMyNotifications returns the actor's notifications, optionally filtered
// by ?status=.
func (h *Handler) ListMyNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var status *model.NotificationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := model.ParseNotificationStatus(raw)
		if err != nil {
			h.writeError(w, err)
			return
		}
		status = &parsed
	}

	notifications, err := h.notifications.ForUser(r.Context(), actor.ID, status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead acknowledges one of the actor's notifications.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	// Ownership is checked before the transition: the read state is
	// terminal, so a rejected caller must not consume the notification.
	n, err := h.notifications.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if n.UserID != actor.ID {
		h.writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
		return
	}

	n, err = h.notifications.MarkRead(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, n)
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return nil, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid actor"})
		return nil, false
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unknown actor"})
			return nil, false
		}
		h.writeError(w, err)
		return nil, false
	}

	return user, true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}

	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrEventNotFound),
		errors.Is(err, model.ErrBookingNotFound),
		errors.Is(err, model.ErrNotificationNotFound),
		errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrForbidden), errors.Is(err, model.ErrDeleteWindow):
		status = http.StatusForbidden
	case errors.Is(err, model.ErrDuplicateEvent),
		errors.Is(err, model.ErrAlreadyBooked),
		errors.Is(err, model.ErrNotEnoughSeats),
		errors.Is(err, model.ErrInvalidTransition):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", slog.String("error", err.Error()))
		h.writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}

	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
