package queries

import (
	"context"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	"homestay-api/internal/pkg/clock"
	"homestay-api/internal/usecase/shared"
)

type RoomList struct {
	Rooms  []*room.Room
	Source shared.ListSource
}

// RoomStatus is today's availability of one room. RoomID echoes the id the
// caller asked for.
type RoomStatus struct {
	RoomID       string
	Availability booking.Availability
}

type RoomQueries interface {
	List(ctx context.Context) (*RoomList, error)
	Get(ctx context.Context, id string) (*room.Room, error)
	ListAvailable(ctx context.Context) ([]*room.Room, error)
	Status(ctx context.Context, id string) (*RoomStatus, error)
}

type roomQueriesImpl struct {
	store shared.RoomStore
	clock clock.Clock
}

func NewRoomQueries(store shared.RoomStore, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{store: store, clock: clk}
}

func (q *roomQueriesImpl) List(ctx context.Context) (*RoomList, error) {
	rooms, source, err := q.store.ListWithSource(ctx)
	if err != nil {
		return nil, err
	}
	return &RoomList{Rooms: rooms, Source: source}, nil
}

func (q *roomQueriesImpl) Get(ctx context.Context, id string) (*room.Room, error) {
	return q.store.Get(ctx, id)
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context) ([]*room.Room, error) {
	rooms, err := q.store.List(ctx)
	if err != nil {
		return nil, err
	}

	today := booking.Today(q.clock)
	available := make([]*room.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Availability(today).Available {
			available = append(available, r)
		}
	}
	return available, nil
}

func (q *roomQueriesImpl) Status(ctx context.Context, id string) (*RoomStatus, error) {
	r, err := q.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RoomStatus{
		RoomID:       id,
		Availability: r.Availability(booking.Today(q.clock)),
	}, nil
}
