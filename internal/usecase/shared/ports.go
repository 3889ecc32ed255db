package shared

import (
	"context"
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
)

// RoomBackend is the persistence contract both physical backends fulfil.
// Every method resolves the room id exactly once before touching data.
type RoomBackend interface {
	List(ctx context.Context) ([]*room.Room, error)
	Get(ctx context.Context, id string) (*room.Room, error)
	// Create stores r. An empty r.ID asks the backend to assign one.
	Create(ctx context.Context, r *room.Room) (*room.Room, error)
	Update(ctx context.Context, id string, p room.Patch, now time.Time) (*room.Room, error)
	Delete(ctx context.Context, id string) error
	AppendInterval(ctx context.Context, id string, iv booking.Interval, now time.Time) error
	RemoveInterval(ctx context.Context, id string, key booking.Key, now time.Time) error
	UpdateInterval(ctx context.Context, id string, key booking.Key, guest booking.Guest, now time.Time) error
}

// RoomStore is the single dispatch point used by commands and queries.
type RoomStore interface {
	RoomBackend
	// ListWithSource is List plus the tag of whatever served the read.
	ListWithSource(ctx context.Context) ([]*room.Room, ListSource, error)
	DataSource() DataSource
}

// BackendControl exposes lifecycle operations of the store to the admin surface.
type BackendControl interface {
	Reconnect(ctx context.Context) bool
	Mirror(ctx context.Context) error
	Health(ctx context.Context) Health
	DataSource() DataSource
}
