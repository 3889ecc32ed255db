package response

import (
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	"homestay-api/internal/usecase/queries"
)

// RoomResponse exposes the id and capacity under both of their historical names.
type RoomResponse struct {
	RoomID          string             `json:"room_id"`
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Price           float64            `json:"price"`
	Capacity        int                `json:"capacity"`
	Persons         int                `json:"persons"`
	Description     string             `json:"description"`
	Amenities       []string           `json:"amenities"`
	BookedIntervals []IntervalResponse `json:"bookedIntervals"`
	CreatedAt       *string            `json:"created_at"`
	UpdatedAt       *string            `json:"updated_at"`
	Available       *bool              `json:"available,omitempty"`
}

type IntervalResponse struct {
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	GuestName  string  `json:"guestName"`
	GuestPhone string  `json:"guestPhone"`
	GuestEmail string  `json:"guestEmail"`
	Notes      string  `json:"notes"`
	CreatedAt  *string `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt,omitempty"`
}

type DateRange struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type RoomStatusResponse struct {
	RoomID         string     `json:"room_id"`
	Available      bool       `json:"available"`
	Status         string     `json:"status"`
	CurrentBooking *DateRange `json:"currentBooking"`
}

func FromRoom(r *room.Room) RoomResponse {
	intervals := make([]IntervalResponse, len(r.BookedIntervals))
	for i, iv := range r.BookedIntervals {
		intervals[i] = FromInterval(iv)
	}
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		RoomID:          r.ID,
		ID:              r.ID,
		Name:            r.Name,
		Price:           r.Price,
		Capacity:        r.Persons,
		Persons:         r.Persons,
		Description:     r.Description,
		Amenities:       amenities,
		BookedIntervals: intervals,
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
}

func FromRooms(rooms []*room.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = FromRoom(r)
	}
	return res
}

// FromAvailableRooms marks every item as available for today.
func FromAvailableRooms(rooms []*room.Room) []RoomResponse {
	res := FromRooms(rooms)
	available := true
	for i := range res {
		res[i].Available = &available
	}
	return res
}

func FromInterval(iv booking.Interval) IntervalResponse {
	res := IntervalResponse{
		CheckIn:    iv.CheckIn,
		CheckOut:   iv.CheckOut,
		GuestName:  iv.Guest.Name,
		GuestPhone: iv.Guest.Phone,
		GuestEmail: iv.Guest.Email,
		Notes:      iv.Guest.Notes,
		CreatedAt:  formatTime(iv.CreatedAt),
	}
	if iv.UpdatedAt != nil {
		res.UpdatedAt = formatTime(*iv.UpdatedAt)
	}
	return res
}

func FromRoomStatus(s *queries.RoomStatus) RoomStatusResponse {
	res := RoomStatusResponse{
		RoomID:    s.RoomID,
		Available: s.Availability.Available,
		Status:    "available",
	}
	if cur := s.Availability.Current; cur != nil {
		res.Status = "booked"
		res.CurrentBooking = &DateRange{CheckIn: cur.CheckIn, CheckOut: cur.CheckOut}
	}
	return res
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
