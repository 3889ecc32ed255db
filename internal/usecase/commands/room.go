package commands

import (
	"context"

	"homestay-api/internal/domain/room"
	"homestay-api/internal/pkg/clock"
	"homestay-api/internal/usecase/shared"
)

type RoomCommands interface {
	Create(ctx context.Context, in CreateRoomInput) (*room.Room, error)
	Update(ctx context.Context, id string, p room.Patch) (*room.Room, error)
	Delete(ctx context.Context, id string) error
}

type roomCommandsImpl struct {
	store shared.RoomStore
	clock clock.Clock
}

func NewRoomCommands(store shared.RoomStore, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{store: store, clock: clk}
}

func (uc *roomCommandsImpl) Create(ctx context.Context, in CreateRoomInput) (*room.Room, error) {
	if in.CustomID != "" {
		if err := room.ValidateCustomID(in.CustomID); err != nil {
			return nil, err
		}
	}

	r, err := room.NewRoom(in.CustomID, in.Fields, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.store.Create(ctx, r)
}

func (uc *roomCommandsImpl) Update(ctx context.Context, id string, p room.Patch) (*room.Room, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return uc.store.Update(ctx, id, p, uc.clock.Now())
}

func (uc *roomCommandsImpl) Delete(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}
