package repository

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	"homestay-api/internal/infra"
	"homestay-api/internal/infra/repository/converter"
	"homestay-api/internal/infra/snapshot"
	"homestay-api/internal/pkg/errs"
)

// FileRoomRepository serves rooms from memory and persists every mutation to
// the snapshot file. One mutex covers both the list and the file write, so
// mutations never interleave.
type FileRoomRepository struct {
	snapshot *snapshot.File
	mu       sync.RWMutex
	rooms    []*room.Room
	loaded   bool
}

func NewFileRoomRepository(file *snapshot.File) *FileRoomRepository {
	return &FileRoomRepository{
		snapshot: file,
		rooms:    []*room.Room{},
	}
}

// Load replaces the in-memory list with the snapshot contents. On failure the
// list is left empty and the repository still accepts writes.
func (r *FileRoomRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.snapshot.Load()
	if err != nil {
		r.rooms = []*room.Room{}
		r.loaded = false
		if errors.Is(err, os.ErrNotExist) {
			return errs.Wrap(err, "snapshot not found")
		}
		return infra.WrapRepoErr(infra.KindFileFailure, "failed to load snapshot", err)
	}
	r.rooms = converter.DocumentsToRooms(docs)
	r.loaded = true
	return nil
}

// Loaded reports whether the last Load succeeded.
func (r *FileRoomRepository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

func (r *FileRoomRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

func (r *FileRoomRepository) List(_ context.Context) ([]*room.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*room.Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		out = append(out, cloneRoom(rm))
	}
	return out, nil
}

func (r *FileRoomRepository) Get(_ context.Context, id string) (*room.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, errs.ErrRoomNotFound
	}
	return cloneRoom(r.rooms[idx]), nil
}

func (r *FileRoomRepository) Create(_ context.Context, rm *room.Room) (*room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneRoom(rm)
	if stored.ID == "" {
		stored.ID = room.NextSequentialID(r.ids())
	}
	if r.indexOf(stored.ID) >= 0 {
		return nil, errs.Mark(errs.Newf("Room with ID %s already exists", stored.ID), errs.ErrRoomAlreadyExists)
	}

	r.rooms = append(r.rooms, stored)
	r.persist()
	return cloneRoom(stored), nil
}

func (r *FileRoomRepository) Update(_ context.Context, id string, p room.Patch, now time.Time) (*room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, errs.ErrRoomNotFound
	}
	p.Apply(r.rooms[idx], now)
	r.persist()
	return cloneRoom(r.rooms[idx]), nil
}

func (r *FileRoomRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return errs.ErrRoomNotFound
	}
	r.rooms = append(r.rooms[:idx], r.rooms[idx+1:]...)
	r.persist()
	return nil
}

func (r *FileRoomRepository) AppendInterval(_ context.Context, id string, iv booking.Interval, now time.Time) error {
	return r.mutateRoom(id, func(rm *room.Room) error {
		return rm.AddInterval(iv, now)
	})
}

func (r *FileRoomRepository) RemoveInterval(_ context.Context, id string, key booking.Key, now time.Time) error {
	return r.mutateRoom(id, func(rm *room.Room) error {
		return rm.RemoveInterval(key, now)
	})
}

func (r *FileRoomRepository) UpdateInterval(_ context.Context, id string, key booking.Key, guest booking.Guest, now time.Time) error {
	return r.mutateRoom(id, func(rm *room.Room) error {
		return rm.UpdateIntervalGuest(key, guest, now)
	})
}

// Replace swaps the whole in-memory set, used when the database contents are
// handed over to the file backend.
func (r *FileRoomRepository) Replace(rooms []*room.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = make([]*room.Room, 0, len(rooms))
	for _, rm := range rooms {
		r.rooms = append(r.rooms, cloneRoom(rm))
	}
	r.loaded = true
}

func (r *FileRoomRepository) mutateRoom(id string, fn func(*room.Room) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return errs.ErrRoomNotFound
	}
	if err := fn(r.rooms[idx]); err != nil {
		return err
	}
	r.persist()
	return nil
}

// persist writes the current list; callers hold the write lock. A failed
// write keeps the in-memory change.
func (r *FileRoomRepository) persist() {
	if err := r.snapshot.Write(converter.RoomsToDocuments(r.rooms)); err != nil {
		slog.Warn("failed to persist fallback rooms", "path", r.snapshot.Path(), "error", err.Error())
	}
}

func (r *FileRoomRepository) indexOf(id string) int {
	for i, rm := range r.rooms {
		if rm.ID == id {
			return i
		}
	}
	return -1
}

func (r *FileRoomRepository) ids() []string {
	ids := make([]string, len(r.rooms))
	for i, rm := range r.rooms {
		ids[i] = rm.ID
	}
	return ids
}

// cloneRoom deep-copies a room so callers never share slices with the
// in-memory list.
func cloneRoom(src *room.Room) *room.Room {
	dst := *src
	dst.Amenities = append(make([]string, 0, len(src.Amenities)), src.Amenities...)
	dst.BookedIntervals = make([]booking.Interval, len(src.BookedIntervals))
	for i, iv := range src.BookedIntervals {
		if iv.UpdatedAt != nil {
			t := *iv.UpdatedAt
			iv.UpdatedAt = &t
		}
		dst.BookedIntervals[i] = iv
	}
	return &dst
}
