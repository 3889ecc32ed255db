package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"

	"homestay-api/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connection is an established, pinged MongoDB session bound to the rooms collection.
type Connection struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// Connect dials MongoDB and verifies it with a ping, both bounded by the
// configured connect timeout. There are no retries.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Connection, func(), error) {
	if !cfg.Enabled() {
		return nil, nil, fmt.Errorf("MONGODB_URI is not set")
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetConnectTimeout(cfg.ConnectTimeout)
	if cfg.TLSInsecure && usesTLS(cfg.URI) {
		clientOptions.SetTLSConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // hosted cluster uses self-signed certs
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	conn := &Connection{
		Client:     client,
		Collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Warn("Error closing mongodb client", "error", err)
		}
	}

	return conn, cleanup, nil
}

// SRV URIs imply TLS; plain URIs only when asked for explicitly.
func usesTLS(uri string) bool {
	lower := strings.ToLower(uri)
	return strings.HasPrefix(lower, "mongodb+srv://") ||
		strings.Contains(lower, "tls=true") ||
		strings.Contains(lower, "ssl=true")
}
