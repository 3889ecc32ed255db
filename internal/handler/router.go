package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"homestay-api/internal/handler/api"
	"homestay-api/internal/handler/middleware"
	"homestay-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Room    *api.RoomHandler
	Booking *api.BookingHandler
	Backend *api.BackendHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, room *api.RoomHandler, booking *api.BookingHandler, backend *api.BackendHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, Handlers{Room: room, Booking: booking, Backend: backend})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/", h.Backend.Root)
	engine.NoRoute(middleware.NotFound())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	backend := engine.Group("/backend")
	{
		addRoutes(backend, []route{
			{Method: http.MethodGet, Path: "/health", Handler: h.Backend.Health},
			{Method: http.MethodPost, Path: "/reconnect", Handler: h.Backend.Reconnect},
			{Method: http.MethodPost, Path: "/sync", Handler: h.Backend.Sync},
			{Method: http.MethodGet, Path: "/metrics", Handler: gin.WrapH(promhttp.Handler())},
		})

		rooms := backend.Group("/api/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/available", Handler: h.Room.ListAvailable},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
			{Method: http.MethodGet, Path: "/:id/status", Handler: h.Room.Status},
		})

		admin := backend.Group("/api/admin/rooms")
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete},
			{Method: http.MethodPost, Path: "/:id/book", Handler: h.Booking.Book},
			{Method: http.MethodPost, Path: "/:id/unbook", Handler: h.Booking.Unbook},
			{Method: http.MethodPut, Path: "/:id/update-booking", Handler: h.Booking.UpdateBooking},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
