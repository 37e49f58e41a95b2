package components

import (
	"room-reservation/internal/handler"
	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewEngine,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, reservation *api.ReservationHandler, room *api.RoomHandler) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Room:        room,
	}
}

func NewEngine() *gin.Engine {
	return gin.New()
}
