package commands

import (
	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
)

// CreateRoomInput carries a create request. An empty CustomID lets the active
// backend assign the id.
type CreateRoomInput struct {
	CustomID string
	Fields   room.Fields
}

// BookingInput is shared by book and update-booking; CheckIn and CheckOut
// address the interval on update.
type BookingInput struct {
	CheckIn    string
	CheckOut   string
	GuestName  string
	GuestPhone string
	GuestEmail string
	Notes      string
}

func (in BookingInput) key() (booking.Key, error) {
	return booking.NewKey(in.CheckIn, in.CheckOut)
}

func (in BookingInput) guest() (booking.Guest, error) {
	return booking.NewGuest(in.GuestName, in.GuestPhone, in.GuestEmail, in.Notes)
}
