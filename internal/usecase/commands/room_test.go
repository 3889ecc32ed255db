//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestay-api/internal/domain/room"
	"homestay-api/internal/pkg/clock"
	"homestay-api/internal/pkg/errs"
	"homestay-api/internal/usecase/commands"
	"homestay-api/tests/common/builder"
	sharedmock "homestay-api/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	now       time.Time
	mockCtrl  *gomock.Controller
	mockStore *sharedmock.MockRoomStore
	uc        commands.RoomCommands
}

func (s *RoomCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = sharedmock.NewMockRoomStore(s.mockCtrl)
	s.uc = commands.NewRoomCommands(s.mockStore, clock.NewMockClock(s.now))
}

func (s *RoomCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomCommandsSuite(t *testing.T) {
	suite.Run(t, new(RoomCommandsTestSuite))
}

func (s *RoomCommandsTestSuite) TestCreate() {
	fields := builder.NewRoomBuilder().Fields()

	s.Run("custom id is kept", func() {
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) (*room.Room, error) {
				s.Equal("0101", r.ID)
				s.True(s.now.Equal(r.CreatedAt))
				s.Empty(r.BookedIntervals)
				return r, nil
			})

		created, err := s.uc.Create(s.ctx, commands.CreateRoomInput{CustomID: "0101", Fields: fields})
		s.Require().NoError(err)
		s.Equal("0101", created.ID)
	})

	s.Run("empty id is left to the store", func() {
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) (*room.Room, error) {
				s.Empty(r.ID)
				assigned := *r
				assigned.ID = "0001"
				return &assigned, nil
			})

		created, err := s.uc.Create(s.ctx, commands.CreateRoomInput{Fields: fields})
		s.Require().NoError(err)
		s.Equal("0001", created.ID)
	})

	s.Run("malformed custom id", func() {
		for _, id := range []string{"101", "01010", "01a1"} {
			_, err := s.uc.Create(s.ctx, commands.CreateRoomInput{CustomID: id, Fields: fields})
			s.True(errs.Is(err, errs.ErrInvalidRoomID), id)
		}
	})

	s.Run("invalid fields never reach the store", func() {
		bad := fields
		bad.Persons = 0
		_, err := s.uc.Create(s.ctx, commands.CreateRoomInput{Fields: bad})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("store errors pass through", func() {
		dup := errs.Mark(errs.New("Room with ID 0101 already exists"), errs.ErrRoomAlreadyExists)
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, dup)

		_, err := s.uc.Create(s.ctx, commands.CreateRoomInput{CustomID: "0101", Fields: fields})
		s.True(errs.Is(err, errs.ErrRoomAlreadyExists))
	})
}

func (s *RoomCommandsTestSuite) TestUpdate() {
	name := "Renamed"

	s.Run("stamps the clock time", func() {
		p := room.Patch{Name: &name}
		updated := builder.NewRoomBuilder().WithID("0101").MustBuildDomain(s.now)
		s.mockStore.EXPECT().Update(gomock.Any(), "0101", p, s.now).Return(updated, nil)

		got, err := s.uc.Update(s.ctx, "0101", p)
		s.Require().NoError(err)
		s.Equal(updated, got)
	})

	s.Run("rejects negative price", func() {
		price := -1.0
		_, err := s.uc.Update(s.ctx, "0101", room.Patch{Price: &price})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("not found", func() {
		s.mockStore.EXPECT().Update(gomock.Any(), "9999", gomock.Any(), gomock.Any()).Return(nil, errs.ErrRoomNotFound)
		_, err := s.uc.Update(s.ctx, "9999", room.Patch{Name: &name})
		s.ErrorIs(err, errs.ErrRoomNotFound)
	})
}

func (s *RoomCommandsTestSuite) TestDelete() {
	s.mockStore.EXPECT().Delete(gomock.Any(), "0101").Return(nil)
	s.NoError(s.uc.Delete(s.ctx, "0101"))

	s.mockStore.EXPECT().Delete(gomock.Any(), "0102").Return(errors.New("db down"))
	s.Error(s.uc.Delete(s.ctx, "0102"))
}
