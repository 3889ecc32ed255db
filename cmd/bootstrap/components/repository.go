package components

import (
	"homestay-api/internal/infra/store"
	"homestay-api/internal/usecase/shared"

	"go.uber.org/fx"
)

// RepositoryModule exposes the store through the usecase ports.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			func(s *store.Store) *store.Store { return s },
			fx.As(new(shared.RoomStore)),
			fx.As(new(shared.BackendControl)),
		),
	),
)
