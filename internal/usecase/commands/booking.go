package commands

import (
	"context"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/pkg/clock"
	"homestay-api/internal/pkg/errs"
	"homestay-api/internal/pkg/metrics"
	"homestay-api/internal/usecase/shared"
)

type BookingCommands interface {
	Book(ctx context.Context, roomID string, in BookingInput) (*booking.Interval, error)
	Unbook(ctx context.Context, roomID, checkIn, checkOut string) error
	UpdateBooking(ctx context.Context, roomID string, in BookingInput) error
}

type bookingCommandsImpl struct {
	store shared.RoomStore
	clock clock.Clock
}

func NewBookingCommands(store shared.RoomStore, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{store: store, clock: clk}
}

func (uc *bookingCommandsImpl) Book(ctx context.Context, roomID string, in BookingInput) (*booking.Interval, error) {
	guest, err := in.guest()
	if err != nil {
		return nil, err
	}
	key, err := in.key()
	if err != nil {
		return nil, errs.Mark(booking.ErrMissingGuestName, errs.ErrValidation)
	}

	now := uc.clock.Now()
	iv, err := booking.NewInterval(key, guest, now)
	if err != nil {
		return nil, err
	}

	if err := uc.store.AppendInterval(ctx, roomID, iv, now); err != nil {
		if errs.Is(err, errs.ErrBookingConflict) {
			metrics.IncBookingDecision("conflict")
		}
		return nil, err
	}
	metrics.IncBookingDecision("accepted")
	return &iv, nil
}

func (uc *bookingCommandsImpl) Unbook(ctx context.Context, roomID, checkIn, checkOut string) error {
	key, err := booking.NewKey(checkIn, checkOut)
	if err != nil {
		return err
	}
	return uc.store.RemoveInterval(ctx, roomID, key, uc.clock.Now())
}

// UpdateBooking replaces every guest field; absent optional fields become empty.
func (uc *bookingCommandsImpl) UpdateBooking(ctx context.Context, roomID string, in BookingInput) error {
	key, err := in.key()
	if err != nil {
		return errs.Mark(booking.ErrMissingGuestName, errs.ErrValidation)
	}
	guest, err := in.guest()
	if err != nil {
		return err
	}
	return uc.store.UpdateInterval(ctx, roomID, key, guest, uc.clock.Now())
}
