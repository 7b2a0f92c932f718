package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	createRoomFunc    func(ctx context.Context, room *model.Room) error
	createBookingFunc func(ctx context.Context, booking *model.Booking) error
	listRoomsFunc     func(ctx context.Context) ([]model.RoomWithBookings, error)
	listCustomersFunc func(ctx context.Context) ([]model.CustomerSummary, error)
	listHistoryFunc   func(ctx context.Context) ([]model.BookingHistoryEntry, error)
}

func (m *mockBookingService) CreateRoom(ctx context.Context, room *model.Room) error {
	if m.createRoomFunc != nil {
		return m.createRoomFunc(ctx, room)
	}
	return nil
}

func (m *mockBookingService) CreateBooking(ctx context.Context, booking *model.Booking) error {
	if m.createBookingFunc != nil {
		return m.createBookingFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingService) ListRoomsWithBookings(ctx context.Context) ([]model.RoomWithBookings, error) {
	if m.listRoomsFunc != nil {
		return m.listRoomsFunc(ctx)
	}
	return []model.RoomWithBookings{}, nil
}

func (m *mockBookingService) ListCustomers(ctx context.Context) ([]model.CustomerSummary, error) {
	if m.listCustomersFunc != nil {
		return m.listCustomersFunc(ctx)
	}
	return []model.CustomerSummary{}, nil
}

func (m *mockBookingService) ListCustomerBookingHistory(ctx context.Context) ([]model.BookingHistoryEntry, error) {
	if m.listHistoryFunc != nil {
		return m.listHistoryFunc(ctx)
	}
	return []model.BookingHistoryEntry{}, nil
}

func newTestHandler(svc *mockBookingService) *BookingHandler {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingHandler(svc, log)
}

func TestCreateRoomResponses(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"roomId":"R1","seats":4,"amenities":["tv"],"pricePerHour":10}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"roomId":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing field",
			body:       `{"roomId":"R1"}`,
			serviceErr: apperrors.Validation("All room details are required.", nil),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate room",
			body:       `{"roomId":"R1","seats":4,"amenities":["tv"],"pricePerHour":10}`,
			serviceErr: apperrors.Conflict("Room with this roomId already exists."),
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				createRoomFunc: func(ctx context.Context, room *model.Room) error {
					return tt.serviceErr
				},
			}
			h := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.CreateRoom(w, req, httprouter.Params{})

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestCreateRoomEnvelope(t *testing.T) {
	svc := &mockBookingService{}
	h := newTestHandler(svc)

	body := `{"roomId":"R1","seats":4,"amenities":["tv"],"pricePerHour":10}`
	req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreateRoom(w, req, httprouter.Params{})

	var resp struct {
		Message string     `json:"message"`
		Room    model.Room `json:"room"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Room created successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Room.RoomID != "R1" || resp.Room.Seats != 4 {
		t.Errorf("room not echoed in response: %+v", resp.Room)
	}
}

func TestCreateBookingResponses(t *testing.T) {
	validBody := `{"customerName":"Alice","date":"2024-06-01","startTime":"09:00","endTime":"10:00","roomId":"R1"}`

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"missing field", apperrors.Validation("All booking details are required.", nil), http.StatusBadRequest},
		{"unknown room", apperrors.NotFoundWithID("Room", "R1"), http.StatusNotFound},
		{"slot conflict maps to 400", apperrors.SlotConflict("Room is already booked for this time slot."), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				createBookingFunc: func(ctx context.Context, booking *model.Booking) error {
					if tt.serviceErr != nil {
						return tt.serviceErr
					}
					booking.BookingID = "BKG-42"
					booking.BookingDate = "2024-06-01"
					booking.Status = model.StatusConfirmed
					return nil
				},
			}
			h := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(validBody))
			w := httptest.NewRecorder()
			h.CreateBooking(w, req, httprouter.Params{})

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			if tt.serviceErr == nil {
				var resp struct {
					Message string        `json:"message"`
					Booking model.Booking `json:"booking"`
				}
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Message != "Room booked successfully" {
					t.Errorf("unexpected message: %q", resp.Message)
				}
				if resp.Booking.BookingID != "BKG-42" || resp.Booking.Status != model.StatusConfirmed {
					t.Errorf("booking not echoed with system fields: %+v", resp.Booking)
				}
			}
		})
	}
}

func TestListRoomsWritesBareArray(t *testing.T) {
	svc := &mockBookingService{
		listRoomsFunc: func(ctx context.Context) ([]model.RoomWithBookings, error) {
			return []model.RoomWithBookings{
				{
					Room:     model.Room{RoomID: "R1", Seats: 4, Amenities: []string{"tv"}, PricePerHour: 10},
					Bookings: []model.Booking{},
				},
			}, nil
		},
	}
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	w := httptest.NewRecorder()
	h.ListRooms(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var listed []model.RoomWithBookings
	if err := json.NewDecoder(w.Body).Decode(&listed); err != nil {
		t.Fatalf("response is not a bare array: %v", err)
	}
	if len(listed) != 1 || listed[0].RoomID != "R1" {
		t.Errorf("unexpected payload: %+v", listed)
	}
}

func TestListCustomersEmptyArray(t *testing.T) {
	h := newTestHandler(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	w := httptest.NewRecorder()
	h.ListCustomers(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}

func TestListCustomersInternalError(t *testing.T) {
	svc := &mockBookingService{
		listCustomersFunc: func(ctx context.Context) ([]model.CustomerSummary, error) {
			return nil, apperrors.Internal("Internal Server Error", nil)
		},
	}
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	w := httptest.NewRecorder()
	h.ListCustomers(w, req, httprouter.Params{})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
