package api

import (
	"net/http"

	reqdto "homestay-api/internal/handler/dto/request"
	resdto "homestay-api/internal/handler/dto/response"
	"homestay-api/internal/handler/httperr"
	"homestay-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingBookingFields = "Missing required fields: checkIn, checkOut, guestName"
	msgMissingDates         = "Missing required fields: checkIn, checkOut"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book a room
// @Description Adds a [checkIn, checkOut) interval. Overlapping intervals are rejected; back-to-back stays are fine.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.BookRequest true "Booking"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /backend/api/admin/rooms/{id}/book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req reqdto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingBookingFields, nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	iv, err := h.cmds.Book(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("Booking created successfully", resdto.FromInterval(*iv)))
}

// @Summary Cancel a booking
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UnbookRequest true "Interval to cancel"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /backend/api/admin/rooms/{id}/unbook [post]
func (h *BookingHandler) Unbook(c *gin.Context) {
	var req reqdto.UnbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingDates, nil)
		return
	}

	if err := h.cmds.Unbook(c.Request.Context(), c.Param("id"), req.CheckIn, req.CheckOut); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("Booking cancelled successfully", nil))
}

// @Summary Update booking guest details
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateBookingRequest true "Interval key and guest details"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /backend/api/admin/rooms/{id}/update-booking [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingBookingFields, nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateBooking(c.Request.Context(), c.Param("id"), in); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("Booking updated successfully", nil))
}
