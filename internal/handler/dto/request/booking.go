package request

import (
	"homestay-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type BookRequest struct {
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestPhone string `json:"guestPhone"`
	GuestEmail string `json:"guestEmail"`
	Notes      string `json:"notes"`
}

type UnbookRequest struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

// UpdateBookingRequest addresses the interval by checkIn/checkOut and replaces
// all guest fields.
type UpdateBookingRequest = BookRequest

func (r *BookRequest) ToInput() (commands.BookingInput, error) {
	var in commands.BookingInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.BookingInput{}, err
	}
	return in, nil
}
