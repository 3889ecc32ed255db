package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	"homestay-api/internal/infra"
	"homestay-api/internal/infra/db"
	"homestay-api/internal/infra/repository"
	"homestay-api/internal/infra/repository/converter"
	"homestay-api/internal/infra/snapshot"
	"homestay-api/internal/pkg/config"
	"homestay-api/internal/pkg/errs"
	"homestay-api/internal/pkg/metrics"
	"homestay-api/internal/usecase/shared"
)

// Primary is the database backend plus the liveness probe used by health.
type Primary interface {
	shared.RoomBackend
	Ping(ctx context.Context) error
}

// Connector establishes the primary backend. The returned func releases it.
type Connector func(ctx context.Context) (Primary, func(), error)

// MongoConnector dials MongoDB once per call with the configured timeout.
func MongoConnector(cfg config.MongoConfig) Connector {
	return func(ctx context.Context) (Primary, func(), error) {
		conn, cleanup, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMongoRoomRepository(conn.Collection, conn.Client), cleanup, nil
	}
}

// Store is the single dispatch point in front of the two room backends. The
// backend is chosen at Open and only changes on a successful Reconnect.
type Store struct {
	connect  Connector
	snapshot *snapshot.File
	fallback *repository.FileRoomRepository
	logger   *slog.Logger

	mu      sync.RWMutex
	primary Primary
	release func()
	source  shared.DataSource

	// mirrorMu serializes full-collection exports.
	mirrorMu sync.Mutex
}

func New(connect Connector, file *snapshot.File, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		connect:  connect,
		snapshot: file,
		fallback: repository.NewFileRoomRepository(file),
		logger:   logger,
		source:   shared.DataSourceNone,
	}
}

// Open tries the database once. On any failure the store serves the snapshot
// until a later Reconnect succeeds.
func (s *Store) Open(ctx context.Context) error {
	if s.tryPrimary(ctx) {
		s.mirrorBestEffort(ctx)
		return nil
	}

	source := shared.DataSourceFallback
	if err := s.fallback.Load(); err != nil {
		s.logger.Warn("fallback snapshot unavailable, starting empty", "path", s.snapshot.Path(), "error", err.Error())
		source = shared.DataSourceNone
	}

	s.mu.Lock()
	s.source = source
	s.mu.Unlock()
	metrics.SetActiveBackend(source.String())

	s.logger.Info("serving rooms from fallback", "source", source, "rooms", s.fallback.Len())
	return nil
}

// Reconnect retries the database. A failure leaves the active backend as it was.
func (s *Store) Reconnect(ctx context.Context) bool {
	if !s.tryPrimary(ctx) {
		return false
	}
	s.mirrorBestEffort(ctx)
	return true
}

func (s *Store) tryPrimary(ctx context.Context) bool {
	if s.connect == nil {
		return false
	}
	primary, release, err := s.connect(ctx)
	if err != nil {
		s.logger.Warn("primary backend unavailable", "error", err.Error())
		return false
	}

	s.mu.Lock()
	previous := s.release
	s.primary = primary
	s.release = release
	s.source = shared.DataSourceMongo
	s.mu.Unlock()

	if previous != nil {
		previous()
	}
	metrics.SetActiveBackend(shared.DataSourceMongo.String())
	s.logger.Info("primary backend connected")
	return true
}

func (s *Store) Close(_ context.Context) error {
	s.mu.Lock()
	release := s.release
	s.primary = nil
	s.release = nil
	s.mu.Unlock()

	if release != nil {
		release()
	}
	return nil
}

func (s *Store) DataSource() shared.DataSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *Store) active() (shared.RoomBackend, shared.DataSource) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.primary != nil {
		return s.primary, s.source
	}
	return s.fallback, s.source
}

func (s *Store) activePrimary() Primary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary
}

// Mirror exports the whole collection to the snapshot file. It refuses when
// the database is not the active backend.
func (s *Store) Mirror(ctx context.Context) error {
	primary := s.activePrimary()
	if primary == nil {
		return errs.ErrNotConnected
	}

	s.mirrorMu.Lock()
	defer s.mirrorMu.Unlock()

	rooms, err := primary.List(ctx)
	if err != nil {
		metrics.IncMirror(false)
		return errs.Wrap(err, "failed to read rooms for mirror")
	}
	if err := s.snapshot.Write(converter.RoomsToDocuments(rooms)); err != nil {
		metrics.IncMirror(false)
		return infra.WrapRepoErr(infra.KindFileFailure, "failed to write snapshot", err)
	}
	// keep the last good export in memory for read recovery
	s.fallback.Replace(rooms)
	metrics.IncMirror(true)
	return nil
}

func (s *Store) mirrorBestEffort(ctx context.Context) {
	if err := s.Mirror(context.WithoutCancel(ctx)); err != nil {
		stage := "read"
		if infra.IsKind(err, infra.KindFileFailure) {
			stage = "write"
		}
		s.logger.Warn("mirror to snapshot failed", "stage", stage, "path", s.snapshot.Path(), "error", err.Error())
	}
}

func (s *Store) Health(ctx context.Context) shared.Health {
	primary := s.activePrimary()
	if primary == nil {
		return shared.Health{
			Healthy:     true,
			Source:      s.DataSource(),
			RoomsLoaded: s.fallback.Len(),
		}
	}
	if err := primary.Ping(ctx); err != nil {
		return shared.Health{Healthy: false, Connected: true, Source: shared.DataSourceMongo, Err: err}
	}
	return shared.Health{Healthy: true, Connected: true, Source: shared.DataSourceMongo}
}

// ListWithSource never fails while a non-empty snapshot exists: a database
// error is answered with the last mirrored rooms instead.
func (s *Store) ListWithSource(ctx context.Context) ([]*room.Room, shared.ListSource, error) {
	backend, source := s.active()
	rooms, err := backend.List(ctx)
	if !source.IsPrimary() {
		return rooms, shared.ListSourceFallback, err
	}
	if err == nil {
		return rooms, shared.ListSourceMongo, nil
	}

	recovered := s.lastSnapshot()
	if len(recovered) == 0 {
		return nil, "", err
	}
	metrics.IncFallbackRead()
	s.logger.Warn("database read failed, serving snapshot", "rooms", len(recovered), "error", err.Error())
	return recovered, shared.ListSourceErrorRecovery, nil
}

func (s *Store) lastSnapshot() []*room.Room {
	if s.fallback.Len() == 0 {
		if err := s.fallback.Load(); err != nil {
			return nil
		}
	}
	rooms, _ := s.fallback.List(context.Background())
	return rooms
}

func (s *Store) List(ctx context.Context) ([]*room.Room, error) {
	rooms, _, err := s.ListWithSource(ctx)
	return rooms, err
}

func (s *Store) Get(ctx context.Context, id string) (*room.Room, error) {
	backend, _ := s.active()
	return backend.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, r *room.Room) (*room.Room, error) {
	backend, source := s.active()
	created, err := backend.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, "create", source)
	return created, nil
}

func (s *Store) Update(ctx context.Context, id string, p room.Patch, now time.Time) (*room.Room, error) {
	backend, source := s.active()
	updated, err := backend.Update(ctx, id, p, now)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, "update", source)
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	backend, source := s.active()
	if err := backend.Delete(ctx, id); err != nil {
		return err
	}
	s.afterMutation(ctx, "delete", source)
	return nil
}

func (s *Store) AppendInterval(ctx context.Context, id string, iv booking.Interval, now time.Time) error {
	backend, source := s.active()
	if err := backend.AppendInterval(ctx, id, iv, now); err != nil {
		return err
	}
	s.afterMutation(ctx, "book", source)
	return nil
}

func (s *Store) RemoveInterval(ctx context.Context, id string, key booking.Key, now time.Time) error {
	backend, source := s.active()
	if err := backend.RemoveInterval(ctx, id, key, now); err != nil {
		return err
	}
	s.afterMutation(ctx, "unbook", source)
	return nil
}

func (s *Store) UpdateInterval(ctx context.Context, id string, key booking.Key, guest booking.Guest, now time.Time) error {
	backend, source := s.active()
	if err := backend.UpdateInterval(ctx, id, key, guest, now); err != nil {
		return err
	}
	s.afterMutation(ctx, "update_booking", source)
	return nil
}

// afterMutation re-mirrors after database writes. The file backend already
// persisted the change itself.
func (s *Store) afterMutation(ctx context.Context, op string, source shared.DataSource) {
	metrics.IncRoomMutation(op, source.String())
	if source.IsPrimary() {
		s.mirrorBestEffort(ctx)
	}
}
