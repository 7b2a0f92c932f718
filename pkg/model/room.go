package model

// Room is a bookable resource. RoomID doubles as its display name: the API
// exposes no separate human-readable name field.
type Room struct {
	RoomID       string   `json:"roomId" validate:"required"`
	Seats        int      `json:"seats" validate:"required,gt=0"`
	Amenities    []string `json:"amenities" validate:"required"`
	PricePerHour float64  `json:"pricePerHour" validate:"required,gt=0"`
}

// RoomWithBookings is the GET /rooms projection: a room plus every booking
// referencing it, in booking insertion order.
type RoomWithBookings struct {
	Room
	Bookings []Booking `json:"bookings"`
}
