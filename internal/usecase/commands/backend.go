package commands

import (
	"context"

	"homestay-api/internal/usecase/shared"
)

type BackendCommands interface {
	// Reconnect reports whether the database is now active, and the source
	// serving requests afterwards.
	Reconnect(ctx context.Context) (bool, shared.DataSource)
	Sync(ctx context.Context) error
}

type backendCommandsImpl struct {
	control shared.BackendControl
}

func NewBackendCommands(control shared.BackendControl) BackendCommands {
	return &backendCommandsImpl{control: control}
}

func (uc *backendCommandsImpl) Reconnect(ctx context.Context) (bool, shared.DataSource) {
	ok := uc.control.Reconnect(ctx)
	return ok, uc.control.DataSource()
}

func (uc *backendCommandsImpl) Sync(ctx context.Context) error {
	return uc.control.Mirror(ctx)
}
