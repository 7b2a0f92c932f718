package validator

import (
	"strings"
	"testing"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingValidator(log)
}

func validRoom() model.Room {
	return model.Room{
		RoomID:       "R1",
		Seats:        4,
		Amenities:    []string{"tv"},
		PricePerHour: 10,
	}
}

func TestValidateRoom(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		mutate    func(r *model.Room)
		wantField string
	}{
		{"valid room", func(r *model.Room) {}, ""},
		{"empty amenities list is allowed", func(r *model.Room) { r.Amenities = []string{} }, ""},
		{"missing roomId", func(r *model.Room) { r.RoomID = "" }, "RoomID"},
		{"missing seats", func(r *model.Room) { r.Seats = 0 }, "Seats"},
		{"negative seats", func(r *model.Room) { r.Seats = -3 }, "Seats"},
		{"nil amenities", func(r *model.Room) { r.Amenities = nil }, "Amenities"},
		{"missing price", func(r *model.Room) { r.PricePerHour = 0 }, "PricePerHour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := validRoom()
			tt.mutate(&room)

			err := v.ValidateRoom(&room)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error to mention %s, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidateBooking(t *testing.T) {
	v := newTestValidator()

	valid := model.Booking{
		CustomerName: "Alice",
		Date:         "2024-06-01",
		StartTime:    "09:00",
		EndTime:      "10:00",
		RoomID:       "R1",
	}

	if err := v.ValidateBooking(&valid); err != nil {
		t.Fatalf("unexpected error for valid booking: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(b *model.Booking)
		wantField string
	}{
		{"missing customerName", func(b *model.Booking) { b.CustomerName = "" }, "CustomerName"},
		{"missing date", func(b *model.Booking) { b.Date = "" }, "Date"},
		{"missing startTime", func(b *model.Booking) { b.StartTime = "" }, "StartTime"},
		{"missing endTime", func(b *model.Booking) { b.EndTime = "" }, "EndTime"},
		{"missing roomId", func(b *model.Booking) { b.RoomID = "" }, "RoomID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := valid
			tt.mutate(&booking)

			err := v.ValidateBooking(&booking)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error to mention %s, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestSystemFieldsAreNotValidated(t *testing.T) {
	v := newTestValidator()

	// bookingId, bookingDate and status are assigned by the system after
	// validation; their absence on the inbound request must not fail.
	booking := model.Booking{
		CustomerName: "Bob",
		Date:         "2024-06-02",
		StartTime:    "11:00",
		EndTime:      "12:00",
		RoomID:       "R2",
	}

	if err := v.ValidateBooking(&booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
