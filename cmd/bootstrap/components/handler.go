package components

import (
	"homestay-api/internal/handler"
	"homestay-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewBackendHandler,
	),
	fx.Invoke(handler.NewRouter),
)
