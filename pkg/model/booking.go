package model

// StatusConfirmed is the only status a booking is ever created with. There is
// no cancellation or completion transition.
const StatusConfirmed = "Confirmed"

// RoomNameFallback is reported by projections when a booking references a
// room that cannot be resolved.
const RoomNameFallback = "Room Not Found"

// DateLayout is the calendar-date wire format for Date and BookingDate.
const DateLayout = "2006-01-02"

// Booking reserves one room for one contiguous interval on one date. Date is
// YYYY-MM-DD; StartTime and EndTime are HH:MM strings compared
// lexicographically, with [StartTime, EndTime) treated as half-open.
// BookingID, BookingDate and Status are system-assigned.
type Booking struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName" validate:"required"`
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
	RoomID       string `json:"roomId" validate:"required"`
	BookingDate  string `json:"bookingDate"`
	Status       string `json:"status"`
}

// Overlaps reports whether two bookings collide: same room, same date, and
// intersecting half-open time intervals. Touching endpoints do not overlap.
func (b Booking) Overlaps(other Booking) bool {
	return b.RoomID == other.RoomID &&
		b.Date == other.Date &&
		b.StartTime < other.EndTime &&
		b.EndTime > other.StartTime
}

// CustomerSummary is the GET /customers projection row.
type CustomerSummary struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
}

// BookingHistoryEntry is the GET /customer-bookings projection row.
type BookingHistoryEntry struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BookingID    string `json:"bookingId"`
	BookingDate  string `json:"bookingDate"`
	Status       string `json:"status"`
}
