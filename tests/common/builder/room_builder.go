//go:build unit || e2e

package builder

import (
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	reqdto "homestay-api/internal/handler/dto/request"
	"homestay-api/internal/infra/repository/converter"
)

type RoomBuilder struct {
	ID          string
	Name        string
	Price       float64
	Capacity    int
	Description string
	Amenities   []string
	Intervals   []booking.Interval
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Name:        "Deluxe Double",
		Price:       450000,
		Capacity:    2,
		Description: "Double room with a garden view",
		Amenities:   []string{"wifi", "air conditioning", "hot water"},
	}
}

func (b *RoomBuilder) WithID(id string) *RoomBuilder {
	b.ID = id
	return b
}

func (b *RoomBuilder) WithIntervals(ivs ...booking.Interval) *RoomBuilder {
	b.Intervals = append(b.Intervals, ivs...)
	return b
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoomBuilder) Fields() room.Fields {
	return room.Fields{
		Name:        b.Name,
		Price:       b.Price,
		Persons:     b.Capacity,
		Description: b.Description,
		Amenities:   append([]string{}, b.Amenities...),
	}
}

func (b *RoomBuilder) BuildDomain(now time.Time) (*room.Room, error) {
	r, err := room.NewRoom(b.ID, b.Fields(), now)
	if err != nil {
		return nil, err
	}
	r.BookedIntervals = append(r.BookedIntervals, b.Intervals...)
	return r, nil
}

// MustBuildDomain panics on invalid builder state; for fixtures only.
func (b *RoomBuilder) MustBuildDomain(now time.Time) *room.Room {
	r, err := b.BuildDomain(now)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RoomBuilder) BuildDocument(now time.Time) converter.RoomDocument {
	return converter.RoomToDocument(b.MustBuildDomain(now))
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	name, price, capacity, desc := b.Name, b.Price, b.Capacity, b.Description
	return reqdto.CreateRoomRequest{
		Name:        &name,
		Price:       &price,
		Capacity:    &capacity,
		Description: &desc,
		Amenities:   append([]string{}, b.Amenities...),
		CustomID:    b.ID,
	}
}

type IntervalBuilder struct {
	CheckIn    string
	CheckOut   string
	GuestName  string
	GuestPhone string
	GuestEmail string
	Notes      string
}

func NewIntervalBuilder() *IntervalBuilder {
	return &IntervalBuilder{
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-05",
		GuestName:  "Alice",
		GuestPhone: "0901234567",
		GuestEmail: "alice@example.com",
	}
}

func (b *IntervalBuilder) Dates(checkIn, checkOut string) *IntervalBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *IntervalBuilder) Guest(name string) *IntervalBuilder {
	b.GuestName = name
	return b
}

func (b *IntervalBuilder) Key() booking.Key {
	return booking.Key{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

func (b *IntervalBuilder) Build(now time.Time) booking.Interval {
	return booking.Interval{
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Guest: booking.Guest{
			Name:  b.GuestName,
			Phone: b.GuestPhone,
			Email: b.GuestEmail,
			Notes: b.Notes,
		},
		CreatedAt: now,
	}
}

func (b *IntervalBuilder) BuildBookRequestDTO() reqdto.BookRequest {
	return reqdto.BookRequest{
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		GuestEmail: b.GuestEmail,
		Notes:      b.Notes,
	}
}

func (b *IntervalBuilder) BuildUnbookRequestDTO() reqdto.UnbookRequest {
	return reqdto.UnbookRequest{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}
