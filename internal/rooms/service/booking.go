package service

import (
	"context"
	"errors"
	"time"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/store"
	"roomly/internal/rooms/validator"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/events"
	"roomly/pkg/model"
)

const eventSource = "rooms"

type BookingService interface {
	CreateRoom(ctx context.Context, room *model.Room) error
	CreateBooking(ctx context.Context, booking *model.Booking) error
	ListRoomsWithBookings(ctx context.Context) ([]model.RoomWithBookings, error)
	ListCustomers(ctx context.Context) ([]model.CustomerSummary, error)
	ListCustomerBookingHistory(ctx context.Context) ([]model.BookingHistoryEntry, error)
}

// EventPublisher pushes domain events to downstream consumers. A nil
// publisher disables publishing entirely.
type EventPublisher interface {
	Publish(ctx context.Context, msg events.Message) error
}

type bookingService struct {
	store     *store.Store
	validator *validator.BookingValidator
	publisher EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	st *store.Store,
	bookingValidator *validator.BookingValidator,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		store:     st,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) CreateRoom(ctx context.Context, room *model.Room) error {
	if err := s.validator.ValidateRoom(room); err != nil {
		s.cfg.Log.Warn("Room validation failed", "error", err)
		return apperrors.Validation("All room details are required.", map[string]any{"error": err.Error()})
	}

	if err := s.store.InsertRoom(*room); err != nil {
		if errors.Is(err, roomserrors.ErrDuplicateRoom) {
			return apperrors.Conflict("Room with this roomId already exists.")
		}
		return apperrors.Internal("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created successfully",
		"room_id", room.RoomID,
		"seats", room.Seats,
	)
	s.publishEvent(ctx, events.TypeRoomCreated, room.RoomID, room)
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.validator.ValidateBooking(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("All booking details are required.", map[string]any{"error": err.Error()})
	}

	if _, ok := s.store.FindRoom(booking.RoomID); !ok {
		return apperrors.NotFoundWithID("Room", booking.RoomID)
	}

	booking.BookingDate = time.Now().UTC().Format(model.DateLayout)
	booking.Status = model.StatusConfirmed

	if err := s.store.InsertBooking(booking); err != nil {
		if errors.Is(err, roomserrors.ErrSlotConflict) {
			return apperrors.SlotConflict("Room is already booked for this time slot.")
		}
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"booking_id", booking.BookingID,
		"room_id", booking.RoomID,
		"date", booking.Date,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)
	s.publishEvent(ctx, events.TypeBookingCreated, booking.RoomID, booking)
	return nil
}

func (s *bookingService) ListRoomsWithBookings(ctx context.Context) ([]model.RoomWithBookings, error) {
	rooms, bookings := s.store.Snapshot()
	return buildRoomsWithBookings(rooms, bookings), nil
}

func (s *bookingService) ListCustomers(ctx context.Context) ([]model.CustomerSummary, error) {
	rooms, bookings := s.store.Snapshot()
	return buildCustomerSummaries(rooms, bookings), nil
}

func (s *bookingService) ListCustomerBookingHistory(ctx context.Context) ([]model.BookingHistoryEntry, error) {
	rooms, bookings := s.store.Snapshot()
	return buildBookingHistory(rooms, bookings), nil
}

// publishEvent is fire and forget: a broker outage must never fail a request.
func (s *bookingService) publishEvent(ctx context.Context, eventType, key string, payload any) {
	if s.publisher == nil {
		return
	}

	msg := events.NewMessage().
		WithKey(key).
		WithValue(payload).
		WithEventType(eventType).
		WithSource(eventSource).
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish event",
			"event_type", eventType,
			"event_id", msg.GetEventID(),
			"key", key,
			"error", err,
		)
	}
}

// --- Projections ---

func buildRoomsWithBookings(rooms []model.Room, bookings []model.Booking) []model.RoomWithBookings {
	result := make([]model.RoomWithBookings, 0, len(rooms))
	for _, room := range rooms {
		entry := model.RoomWithBookings{
			Room:     room,
			Bookings: make([]model.Booking, 0),
		}
		for _, booking := range bookings {
			if booking.RoomID == room.RoomID {
				entry.Bookings = append(entry.Bookings, booking)
			}
		}
		result = append(result, entry)
	}
	return result
}

func buildCustomerSummaries(rooms []model.Room, bookings []model.Booking) []model.CustomerSummary {
	result := make([]model.CustomerSummary, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, model.CustomerSummary{
			CustomerName: booking.CustomerName,
			RoomName:     resolveRoomName(rooms, booking.RoomID),
			Date:         booking.Date,
			StartTime:    booking.StartTime,
		})
	}
	return result
}

func buildBookingHistory(rooms []model.Room, bookings []model.Booking) []model.BookingHistoryEntry {
	result := make([]model.BookingHistoryEntry, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, model.BookingHistoryEntry{
			CustomerName: booking.CustomerName,
			RoomName:     resolveRoomName(rooms, booking.RoomID),
			Date:         booking.Date,
			StartTime:    booking.StartTime,
			EndTime:      booking.EndTime,
			BookingID:    booking.BookingID,
			BookingDate:  booking.BookingDate,
			Status:       booking.Status,
		})
	}
	return result
}

// resolveRoomName reports the room's identifier; rooms carry no separate
// display name. Orphaned bookings fall back to a fixed marker.
func resolveRoomName(rooms []model.Room, roomID string) string {
	for _, room := range rooms {
		if room.RoomID == roomID {
			return room.RoomID
		}
	}
	return model.RoomNameFallback
}
