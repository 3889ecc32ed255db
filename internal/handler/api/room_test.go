//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	"homestay-api/internal/handler/api"
	"homestay-api/internal/handler/middleware"
	resdto "homestay-api/internal/handler/dto/response"
	"homestay-api/internal/pkg/errs"
	"homestay-api/internal/usecase/commands"
	"homestay-api/internal/usecase/queries"
	"homestay-api/internal/usecase/shared"
	"homestay-api/tests/common/builder"
	"homestay-api/tests/common/httptest"
	"homestay-api/tests/common/testutil"
	commandsmock "homestay-api/tests/mock/commands"
	queriesmock "homestay-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/available", s.handler.ListAvailable)
	s.router.GET("/rooms/:id", s.handler.Get)
	s.router.GET("/rooms/:id/status", s.handler.Status)
	s.router.POST("/admin/rooms", s.handler.Create)
	s.router.PUT("/admin/rooms/:id", s.handler.Update)
	s.router.DELETE("/admin/rooms/:id", s.handler.Delete)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

type testCaseRoom struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestList
// ================================================================================

func (s *RoomHandlerTestSuite) TestList() {
	rooms := []*room.Room{
		builder.NewRoomBuilder().WithID("0101").MustBuildDomain(fixedNow),
		builder.NewRoomBuilder().WithID("0102").MustBuildDomain(fixedNow),
	}

	s.Run("success: returns rooms with count and source", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(&queries.RoomList{Rooms: rooms, Source: shared.ListSourceMongo}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil)

		env := httptest.DecodeEnvelope[[]resdto.RoomResponse](s.T(), rec, http.StatusOK)
		s.Require().NotNil(env.Count)
		s.Equal(2, *env.Count)
		s.Equal("mongodb", env.Source)
		s.Equal("0101", env.Data[0].RoomID)
		s.Equal("0101", env.Data[0].ID)
		s.Equal(2, env.Data[0].Capacity)
		s.Equal(2, env.Data[0].Persons)
		s.Require().NotNil(env.Data[0].CreatedAt)
		s.Equal("2024-06-01T09:00:00Z", *env.Data[0].CreatedAt)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(&queries.RoomList{Source: shared.ListSourceFallback}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil)

		s.Contains(rec.Body.String(), `"data":[]`)
		env := httptest.DecodeEnvelope[[]resdto.RoomResponse](s.T(), rec, http.StatusOK)
		s.Equal(0, *env.Count)
		s.Equal("fallback", env.Source)
	})

	s.Run("error: 500 hides internal details", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("socket closed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "socket closed")
	})
}

// ================================================================================
// TestGet / TestStatus / TestListAvailable
// ================================================================================

func (s *RoomHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		r := builder.NewRoomBuilder().WithID("0101").
			WithIntervals(builder.NewIntervalBuilder().Build(fixedNow)).MustBuildDomain(fixedNow)
		s.mockQueries.EXPECT().Get(gomock.Any(), "0101").Return(r, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/0101", nil)

		env := httptest.DecodeEnvelope[resdto.RoomResponse](s.T(), rec, http.StatusOK)
		s.Equal("Deluxe Double", env.Data.Name)
		s.Require().Len(env.Data.BookedIntervals, 1)
		s.Equal("Alice", env.Data.BookedIntervals[0].GuestName)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "9999").Return(nil, errs.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/9999", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestStatus() {
	s.Run("booked room reports the current booking", func() {
		current := booking.Interval{CheckIn: "2024-06-01", CheckOut: "2024-06-05"}
		s.mockQueries.EXPECT().Status(gomock.Any(), "0101").Return(&queries.RoomStatus{
			RoomID:       "0101",
			Availability: booking.Availability{Available: false, Current: &current},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/0101/status", nil)

		env := httptest.DecodeEnvelope[resdto.RoomStatusResponse](s.T(), rec, http.StatusOK)
		s.Equal("booked", env.Data.Status)
		s.False(env.Data.Available)
		s.Require().NotNil(env.Data.CurrentBooking)
		s.Equal("2024-06-05", env.Data.CurrentBooking.CheckOut)
	})

	s.Run("free room has a null current booking", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), "0102").Return(&queries.RoomStatus{
			RoomID:       "0102",
			Availability: booking.Availability{Available: true},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/0102/status", nil)

		s.Contains(rec.Body.String(), `"currentBooking":null`)
		env := httptest.DecodeEnvelope[resdto.RoomStatusResponse](s.T(), rec, http.StatusOK)
		s.Equal("available", env.Data.Status)
		s.Equal("0102", env.Data.RoomID)
	})
}

func (s *RoomHandlerTestSuite) TestListAvailable() {
	free := builder.NewRoomBuilder().WithID("0102").MustBuildDomain(fixedNow)
	s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return([]*room.Room{free}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/available", nil)

	env := httptest.DecodeEnvelope[[]resdto.RoomResponse](s.T(), rec, http.StatusOK)
	s.Require().Len(env.Data, 1)
	s.Require().NotNil(env.Data[0].Available)
	s.True(*env.Data[0].Available)
	s.Empty(env.Source)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/admin/rooms"
	reqBody := builder.NewRoomBuilder().WithID("0101").BuildCreateRequestDTO()
	created := builder.NewRoomBuilder().WithID("0101").MustBuildDomain(fixedNow)

	s.Run("success: returns 201 with location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateRoomInput) (*room.Room, error) {
				s.Equal("0101", in.CustomID)
				s.Equal(2, in.Fields.Persons)
				s.Equal("Deluxe Double", in.Fields.Name)
				s.Equal([]string{"wifi", "air conditioning", "hot water"}, in.Fields.Amenities)
				return created, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		env := httptest.DecodeEnvelope[resdto.RoomResponse](s.T(), rec, http.StatusCreated)
		s.Equal("Room added successfully", env.Message)
		s.Equal("0101", env.Data.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/backend/api/admin/rooms/0101"})
	})

	s.Run("validation", func() {
		cases := []testCaseRoom{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing price", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
			{name: "missing capacity", mutate: testutil.Field("capacity", nil), expectCode: http.StatusBadRequest},
			{name: "missing description", mutate: testutil.Field("description", nil), expectCode: http.StatusBadRequest},
			{name: "missing amenities", mutate: testutil.Field("amenities", nil), expectCode: http.StatusBadRequest},
			{name: "null name", mutate: testutil.Null("name"), expectCode: http.StatusBadRequest},
			{name: "null price", mutate: testutil.Null("price"), expectCode: http.StatusBadRequest},
			{name: "zero price is allowed", mutate: testutil.Field("price", 0), expectCode: http.StatusCreated},
			{name: "empty amenities are allowed", mutate: testutil.Field("amenities", []string{}), expectCode: http.StatusCreated},
			{name: "custom id is optional", mutate: testutil.Field("custom_id", nil), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Missing required fields")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid custom id",
				err:            room.ValidateCustomID("101"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Room ID must be exactly 4 digits (e.g., 0101, 0201)",
			},
			{
				name:           "duplicate id",
				err:            errs.Mark(errs.New("Room with ID 0101 already exists"), errs.ErrRoomAlreadyExists),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room with ID 0101 already exists",
			},
			{
				name:           "negative price",
				err:            room.Patch{Price: floatPtr(-1)}.Validate(),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "price cannot be negative",
			},
			{
				name:           "database failure",
				err:            errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *RoomHandlerTestSuite) TestUpdate() {
	url := "/admin/rooms/0101"
	updated := builder.NewRoomBuilder().WithID("0101").MustBuildDomain(fixedNow)

	s.Run("success: only present fields are patched", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "0101", gomock.Any()).
			DoAndReturn(func(_ any, _ string, p room.Patch) (*room.Room, error) {
				s.Require().NotNil(p.Price)
				s.Equal(500000.0, *p.Price)
				s.Nil(p.Name)
				s.Nil(p.Persons)
				s.False(p.HasAmenities)
				return updated, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": 500000})

		env := httptest.DecodeEnvelope[resdto.RoomResponse](s.T(), rec, http.StatusOK)
		s.Equal("Room updated successfully", env.Message)
	})

	s.Run("success: persons wins over capacity", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "0101", gomock.Any()).
			DoAndReturn(func(_ any, _ string, p room.Patch) (*room.Room, error) {
				s.Require().NotNil(p.Persons)
				s.Equal(4, *p.Persons)
				return updated, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"capacity": 3, "persons": 4})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty amenities clear the list", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "0101", gomock.Any()).
			DoAndReturn(func(_ any, _ string, p room.Patch) (*room.Room, error) {
				s.True(p.HasAmenities)
				s.Empty(p.Amenities)
				return updated, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"amenities": []string{}})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": "cheap"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "0101", gomock.Any()).Return(nil, errs.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "X"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "0101").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/rooms/0101", nil)

		env := httptest.DecodeEnvelope[any](s.T(), rec, http.StatusOK)
		s.Equal("Room deleted successfully", env.Message)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "0404").Return(errs.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/rooms/0404", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
