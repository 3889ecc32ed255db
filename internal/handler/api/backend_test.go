//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"homestay-api/internal/handler/api"
	"homestay-api/internal/handler/middleware"
	resdto "homestay-api/internal/handler/dto/response"
	"homestay-api/internal/pkg/errs"
	"homestay-api/internal/usecase/shared"
	"homestay-api/tests/common/httptest"
	commandsmock "homestay-api/tests/mock/commands"
	queriesmock "homestay-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BackendHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBackendCommands
	mockQueries  *queriesmock.MockBackendQueries
}

func (s *BackendHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBackendCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBackendQueries(s.mockCtrl)
	h := api.NewBackendHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/", h.Root)
	s.router.GET("/health", h.Health)
	s.router.POST("/reconnect", h.Reconnect)
	s.router.POST("/sync", h.Sync)
}

func (s *BackendHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBackendHandlerSuite(t *testing.T) {
	suite.Run(t, new(BackendHandlerTestSuite))
}

func (s *BackendHandlerTestSuite) TestRoot() {
	s.mockQueries.EXPECT().DataSource().Return(shared.DataSourceFallback)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/", nil)

	var body resdto.ServiceInfoResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Success)
	s.Equal(api.Version, body.Version)
	s.Equal("fallback_json", body.DataSource)
	s.Equal("/backend/api/rooms", body.Endpoints["rooms"])
}

func (s *BackendHandlerTestSuite) TestHealth() {
	testCases := []struct {
		name       string
		health     shared.Health
		expectCode int
		expect     resdto.HealthResponse
	}{
		{
			name:       "database connected",
			health:     shared.Health{Healthy: true, Connected: true, Source: shared.DataSourceMongo},
			expectCode: http.StatusOK,
			expect:     resdto.HealthResponse{Status: "healthy", Database: "connected", Source: "mongodb"},
		},
		{
			name:       "serving the snapshot",
			health:     shared.Health{Healthy: true, Source: shared.DataSourceFallback, RoomsLoaded: 3},
			expectCode: http.StatusOK,
			expect:     resdto.HealthResponse{Status: "healthy", Database: "disconnected", Source: "fallback_json", RoomsLoaded: intPtr(3)},
		},
		{
			name:       "ping failed",
			health:     shared.Health{Connected: true, Source: shared.DataSourceMongo, Err: errors.New("timeout")},
			expectCode: http.StatusInternalServerError,
			expect:     resdto.HealthResponse{Status: "unhealthy", Error: "timeout"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockQueries.EXPECT().Health(gomock.Any()).Return(tc.health)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)

			s.Equal(tc.expectCode, rec.Code)
			var body resdto.HealthResponse
			s.Require().NoError(decodeJSON(rec.Body.Bytes(), &body))
			s.Equal(tc.expect, body)
		})
	}
}

func (s *BackendHandlerTestSuite) TestReconnect() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Reconnect(gomock.Any()).Return(true, shared.DataSourceMongo)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reconnect", nil)

		var body resdto.ReconnectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("mongodb", body.Source)
	})

	s.Run("failure is still 200", func() {
		s.mockCommands.EXPECT().Reconnect(gomock.Any()).Return(false, shared.DataSourceFallback)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reconnect", nil)

		var body resdto.ReconnectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal("Failed to reconnect to MongoDB, using fallback data", body.Message)
		s.Equal("fallback_json", body.Source)
	})
}

func (s *BackendHandlerTestSuite) TestSync() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", nil)

		env := httptest.DecodeEnvelope[any](s.T(), rec, http.StatusOK)
		s.Equal("Data synced to JSON backup", env.Message)
	})

	s.Run("not connected", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any()).Return(errs.ErrNotConnected)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "MongoDB not connected, nothing to sync")
	})

	s.Run("write failure", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any()).Return(errs.Wrap(errors.New("disk full"), "failed to write snapshot"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to sync data")
	})
}
