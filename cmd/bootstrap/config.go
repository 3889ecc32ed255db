package bootstrap

import (
	"log/slog"

	"homestay-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logBackendMode),
)

// logBackendMode states up front which backend the process will try, so a
// missing MONGODB_URI is visible before the first request.
func logBackendMode(cfg config.Config, logger *slog.Logger) {
	if !cfg.Mongo.Enabled() {
		logger.Warn("MONGODB_URI not set, rooms will be served from the snapshot file", "snapshot", cfg.Snapshot.Path)
		return
	}
	logger.Info("primary backend configured", "database", cfg.Mongo.Database, "collection", cfg.Mongo.Collection, "snapshot", cfg.Snapshot.Path)
}
