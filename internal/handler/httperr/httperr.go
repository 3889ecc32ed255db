package httperr

import (
	"net/http"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err onto the status taxonomy and aborts with its public message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	AbortWithError(c, status, err, MessageOf(err, status), nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation), errs.Is(err, errs.ErrInvalidInterval), errs.Is(err, errs.ErrInvalidRoomID):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrRoomNotFound), errs.Is(err, errs.ErrBookingNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrRoomAlreadyExists), errs.Is(err, errs.ErrBookingConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf renders the client-facing text; internals never leak on 500.
func MessageOf(err error, status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "Internal server error"
	case errs.Is(err, booking.ErrMissingGuestName):
		return "Missing required fields: checkIn, checkOut, guestName"
	case errs.Is(err, booking.ErrMissingDates):
		return "Missing required fields: checkIn, checkOut"
	case errs.Is(err, errs.ErrRoomNotFound):
		return "Room not found"
	case errs.Is(err, errs.ErrBookingNotFound):
		return "Booking not found"
	case errs.Is(err, errs.ErrBookingConflict):
		return "Booking already exists or dates overlap with existing booking"
	case errs.Is(err, errs.ErrInvalidRoomID):
		return "Room ID must be exactly 4 digits (e.g., 0101, 0201)"
	default:
		return err.Error()
	}
}
