package api

import (
	"net/http"

	reqdto "homestay-api/internal/handler/dto/request"
	resdto "homestay-api/internal/handler/dto/response"
	"homestay-api/internal/handler/httperr"
	"homestay-api/internal/usecase/commands"
	"homestay-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Description List every room. When the database fails mid-request the last snapshot is served and source says so.
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 500 {object} httperr.Response
// @Router /backend/api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	list, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(resdto.FromRooms(list.Rooms), string(list.Source)))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /backend/api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	r, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromRoom(r)))
}

// @Summary List rooms available today
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /backend/api/rooms/available [get]
func (h *RoomHandler) ListAvailable(c *gin.Context) {
	rooms, err := h.q.ListAvailable(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(resdto.FromAvailableRooms(rooms), ""))
}

// @Summary Today's availability of a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /backend/api/rooms/{id}/status [get]
func (h *RoomHandler) Status(c *gin.Context) {
	status, err := h.q.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromRoomStatus(status)))
}

// @Summary Create room
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /backend/api/admin/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/backend/api/admin/rooms/"+created.ID)
	c.JSON(http.StatusCreated, resdto.Message("Room added successfully", resdto.FromRoom(created)))
}

// @Summary Update room
// @Description Partial update; capacity and persons are aliases.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Update room request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /backend/api/admin/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("Room updated successfully", resdto.FromRoom(updated)))
}

// @Summary Delete room
// @Tags admin
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /backend/api/admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("Room deleted successfully", nil))
}
