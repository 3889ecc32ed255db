//go:build unit

package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	"homestay-api/internal/infra/repository"
	"homestay-api/internal/infra/snapshot"
	"homestay-api/internal/pkg/errs"
	"homestay-api/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type FileRoomRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	now  time.Time
	file *snapshot.File
	repo *repository.FileRoomRepository
}

func (s *FileRoomRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s.file = snapshot.NewFile(filepath.Join(s.T().TempDir(), "rooms_backup.json"))
	s.repo = repository.NewFileRoomRepository(s.file)
}

func TestFileRoomRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRoomRepositoryTestSuite))
}

func (s *FileRoomRepositoryTestSuite) create(id string) *room.Room {
	created, err := s.repo.Create(s.ctx, builder.NewRoomBuilder().WithID(id).MustBuildDomain(s.now))
	s.Require().NoError(err)
	return created
}

// reload reads the snapshot back through a fresh repository.
func (s *FileRoomRepositoryTestSuite) reload() *repository.FileRoomRepository {
	fresh := repository.NewFileRoomRepository(s.file)
	s.Require().NoError(fresh.Load())
	return fresh
}

func (s *FileRoomRepositoryTestSuite) TestLoad() {
	s.Run("missing snapshot leaves an empty writable list", func() {
		s.Error(s.repo.Load())
		s.False(s.repo.Loaded())
		s.Equal(0, s.repo.Len())

		s.create("0101")
		s.Equal(1, s.repo.Len())
	})

	s.Run("persisted rooms come back", func() {
		fresh := s.reload()
		s.True(fresh.Loaded())
		got, err := fresh.Get(s.ctx, "0101")
		s.Require().NoError(err)
		s.Equal("Deluxe Double", got.Name)
	})
}

func (s *FileRoomRepositoryTestSuite) TestCreate() {
	s.Run("assigns sequential ids when none is given", func() {
		first := s.create("")
		second := s.create("")
		s.Equal("0001", first.ID)
		s.Equal("0002", second.ID)
	})

	s.Run("continues above the largest numeric id", func() {
		s.create("0201")
		s.Equal("0202", s.create("").ID)
	})

	s.Run("rejects a duplicate id", func() {
		_, err := s.repo.Create(s.ctx, builder.NewRoomBuilder().WithID("0201").MustBuildDomain(s.now))
		s.True(errs.Is(err, errs.ErrRoomAlreadyExists))
		s.EqualError(err, "Room with ID 0201 already exists")
	})

	s.Run("returned rooms do not alias the stored list", func() {
		got, err := s.repo.Get(s.ctx, "0201")
		s.Require().NoError(err)
		got.Amenities[0] = "mutated"

		again, err := s.repo.Get(s.ctx, "0201")
		s.Require().NoError(err)
		s.Equal("wifi", again.Amenities[0])
	})
}

func (s *FileRoomRepositoryTestSuite) TestUpdate() {
	s.create("0101")
	later := s.now.Add(time.Hour)
	name := "Renamed"

	s.Run("applies present fields only", func() {
		updated, err := s.repo.Update(s.ctx, "0101", room.Patch{Name: &name}, later)
		s.Require().NoError(err)
		s.Equal("Renamed", updated.Name)
		s.Equal(450000.0, updated.Price)
		s.True(later.Equal(updated.UpdatedAt))
		s.True(s.now.Equal(updated.CreatedAt))
	})

	s.Run("is persisted", func() {
		got, err := s.reload().Get(s.ctx, "0101")
		s.Require().NoError(err)
		s.Equal("Renamed", got.Name)
	})

	s.Run("unknown room", func() {
		_, err := s.repo.Update(s.ctx, "9999", room.Patch{Name: &name}, later)
		s.ErrorIs(err, errs.ErrRoomNotFound)
	})
}

func (s *FileRoomRepositoryTestSuite) TestDelete() {
	s.create("0101")
	s.create("0102")

	s.Require().NoError(s.repo.Delete(s.ctx, "0101"))
	s.ErrorIs(s.repo.Delete(s.ctx, "0101"), errs.ErrRoomNotFound)

	rooms, err := s.reload().List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rooms, 1)
	s.Equal("0102", rooms[0].ID)
}

func (s *FileRoomRepositoryTestSuite) TestBookingLifecycle() {
	s.create("0101")
	ib := builder.NewIntervalBuilder()

	s.Run("append", func() {
		s.Require().NoError(s.repo.AppendInterval(s.ctx, "0101", ib.Build(s.now), s.now))
	})

	s.Run("overlap is rejected", func() {
		overlap := builder.NewIntervalBuilder().Dates("2024-06-04", "2024-06-06").Guest("Bob").Build(s.now)
		s.ErrorIs(s.repo.AppendInterval(s.ctx, "0101", overlap, s.now), errs.ErrBookingConflict)
	})

	s.Run("back-to-back is accepted", func() {
		next := builder.NewIntervalBuilder().Dates("2024-06-05", "2024-06-07").Guest("Bob").Build(s.now)
		s.NoError(s.repo.AppendInterval(s.ctx, "0101", next, s.now))
	})

	s.Run("update guest", func() {
		later := s.now.Add(time.Hour)
		s.Require().NoError(s.repo.UpdateInterval(s.ctx, "0101", ib.Key(), booking.Guest{Name: "Alice Nguyen"}, later))

		got, err := s.reload().Get(s.ctx, "0101")
		s.Require().NoError(err)
		s.Require().Len(got.BookedIntervals, 2)
		s.Equal("Alice Nguyen", got.BookedIntervals[0].Guest.Name)
		s.Empty(got.BookedIntervals[0].Guest.Phone)
		s.Require().NotNil(got.BookedIntervals[0].UpdatedAt)
		s.True(later.Equal(*got.BookedIntervals[0].UpdatedAt))
	})

	s.Run("remove", func() {
		s.Require().NoError(s.repo.RemoveInterval(s.ctx, "0101", ib.Key(), s.now))
		s.ErrorIs(s.repo.RemoveInterval(s.ctx, "0101", ib.Key(), s.now), errs.ErrBookingNotFound)
		s.ErrorIs(s.repo.UpdateInterval(s.ctx, "0101", ib.Key(), booking.Guest{Name: "X"}, s.now), errs.ErrBookingNotFound)
	})

	s.Run("unknown room", func() {
		s.ErrorIs(s.repo.AppendInterval(s.ctx, "9999", ib.Build(s.now), s.now), errs.ErrRoomNotFound)
		s.ErrorIs(s.repo.RemoveInterval(s.ctx, "9999", ib.Key(), s.now), errs.ErrRoomNotFound)
	})
}

func (s *FileRoomRepositoryTestSuite) TestReplace() {
	s.create("0101")

	s.repo.Replace([]*room.Room{builder.NewRoomBuilder().WithID("0500").MustBuildDomain(s.now)})

	s.True(s.repo.Loaded())
	s.Equal(1, s.repo.Len())
	_, err := s.repo.Get(s.ctx, "0101")
	s.ErrorIs(err, errs.ErrRoomNotFound)
}
