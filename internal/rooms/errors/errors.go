package errors

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")

	ErrDuplicateRoom = errors.New("room with this id already exists")

	ErrSlotConflict = errors.New("room is already booked for this time slot")

	ErrIDSpaceExhausted = errors.New("no free booking id available")
)
