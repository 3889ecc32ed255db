package bootstrap

import (
	"context"
	"log/slog"

	"homestay-api/internal/infra/snapshot"
	"homestay-api/internal/infra/store"
	"homestay-api/internal/pkg/config"
	"homestay-api/internal/pkg/metrics"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSnapshotFile,
		NewStore,
	),
)

func NewSnapshotFile(cfg config.Config) *snapshot.File {
	return snapshot.NewFile(cfg.Snapshot.Path)
}

// NewStore opens the room store on start: database first, snapshot otherwise.
// A missing database never fails startup.
func NewStore(lc fx.Lifecycle, cfg config.Config, file *snapshot.File, logger *slog.Logger) *store.Store {
	metrics.Register()
	s := store.New(store.MongoConnector(cfg.Mongo), file, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Open(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return s.Close(ctx)
		},
	})

	return s
}
