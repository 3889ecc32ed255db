package api

import (
	"net/http"

	resdto "homestay-api/internal/handler/dto/response"
	"homestay-api/internal/handler/httperr"
	"homestay-api/internal/pkg/errs"
	"homestay-api/internal/usecase/commands"
	"homestay-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

type BackendHandler struct {
	cmds commands.BackendCommands
	q    queries.BackendQueries
}

func NewBackendHandler(cmds commands.BackendCommands, q queries.BackendQueries) *BackendHandler {
	return &BackendHandler{cmds: cmds, q: q}
}

// @Summary Service info
// @Tags backend
// @Produce json
// @Success 200 {object} resdto.ServiceInfoResponse
// @Router / [get]
func (h *BackendHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ServiceInfoResponse{
		Success:    true,
		Message:    "KhietAn Homestay API is running",
		Version:    Version,
		DataSource: h.q.DataSource().String(),
		Endpoints: map[string]string{
			"health":      "/backend/health",
			"rooms":       "/backend/api/rooms",
			"admin_rooms": "/backend/api/admin/rooms",
		},
	})
}

// @Summary Backend health
// @Tags backend
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 500 {object} resdto.HealthResponse
// @Router /backend/health [get]
func (h *BackendHandler) Health(c *gin.Context) {
	health := h.q.Health(c.Request.Context())
	status := http.StatusOK
	if !health.Healthy {
		status = http.StatusInternalServerError
	}
	c.JSON(status, resdto.FromHealth(health))
}

// @Summary Retry the database connection
// @Description Always 200; success tells whether the database is now serving.
// @Tags backend
// @Produce json
// @Success 200 {object} resdto.ReconnectResponse
// @Router /backend/reconnect [post]
func (h *BackendHandler) Reconnect(c *gin.Context) {
	ok, source := h.cmds.Reconnect(c.Request.Context())
	res := resdto.ReconnectResponse{
		Success: ok,
		Message: "Successfully reconnected to MongoDB",
		Source:  source.String(),
	}
	if !ok {
		res.Message = "Failed to reconnect to MongoDB, using fallback data"
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Mirror the database to the snapshot file
// @Tags backend
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /backend/sync [post]
func (h *BackendHandler) Sync(c *gin.Context) {
	if err := h.cmds.Sync(c.Request.Context()); err != nil {
		if errs.Is(err, errs.ErrNotConnected) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "MongoDB not connected, nothing to sync", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to sync data", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("Data synced to JSON backup", nil))
}
