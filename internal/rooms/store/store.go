// Package store holds the two in-memory collections behind the booking API.
// It is the single owner of rooms and bookings: every mutation runs under one
// write-lock acquisition so the conflict scan, booking-id assignment and
// append cannot interleave, and every read hands out copies.
package store

import (
	"fmt"
	"math/rand"
	"sync"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/pkg/model"
)

// bookingIDSpace is the integer space booking ids are drawn from. Ids look
// like BKG-4217.
const bookingIDSpace = 10000

type Store struct {
	mu       sync.RWMutex
	rooms    []model.Room
	bookings []model.Booking
	usedIDs  map[string]struct{}
}

func New() *Store {
	return &Store{
		usedIDs: make(map[string]struct{}),
	}
}

// InsertRoom appends a room. Returns ErrDuplicateRoom when the room id is
// already taken; rooms are never deleted, so the check cannot go stale.
func (s *Store) InsertRoom(room model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.rooms {
		if existing.RoomID == room.RoomID {
			return roomserrors.ErrDuplicateRoom
		}
	}

	s.rooms = append(s.rooms, room)
	return nil
}

// FindRoom returns the room with the given id.
func (s *Store) FindRoom(roomID string) (model.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.RoomID == roomID {
			return room, true
		}
	}
	return model.Room{}, false
}

// InsertBooking scans for slot conflicts, assigns a fresh booking id and
// appends, all under one write lock. The id is written back into the caller's
// booking on success. Callers stamp BookingDate and Status beforehand.
func (s *Store) InsertBooking(booking *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.Overlaps(*booking) {
			return roomserrors.ErrSlotConflict
		}
	}

	id, err := s.nextBookingID()
	if err != nil {
		return err
	}

	booking.BookingID = id
	s.usedIDs[id] = struct{}{}
	s.bookings = append(s.bookings, *booking)
	return nil
}

// nextBookingID draws random ids until it finds an unused one. The draw is
// bounded; once the space fills up a full sweep finds any remaining slot.
// Must be called with the write lock held.
func (s *Store) nextBookingID() (string, error) {
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("BKG-%d", rand.Intn(bookingIDSpace))
		if _, taken := s.usedIDs[id]; !taken {
			return id, nil
		}
	}

	for n := 0; n < bookingIDSpace; n++ {
		id := fmt.Sprintf("BKG-%d", n)
		if _, taken := s.usedIDs[id]; !taken {
			return id, nil
		}
	}

	return "", roomserrors.ErrIDSpaceExhausted
}

// Snapshot copies both collections under a single read lock so projections
// never observe a half-applied mutation.
func (s *Store) Snapshot() ([]model.Room, []model.Booking) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]model.Room, len(s.rooms))
	copy(rooms, s.rooms)
	bookings := make([]model.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return rooms, bookings
}

// Counts returns the sizes of the two collections.
func (s *Store) Counts() (rooms int, bookings int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms), len(s.bookings)
}
