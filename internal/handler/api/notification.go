package api

import (
	"net/http"

	reqdto "cuponera-backend/internal/handler/dto/request"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary Send a notification
// @Description Stores the notification as QUEUED and schedules the push
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendNotificationRequest true "Notification"
// @Success 202 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req reqdto.SendNotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id, err := h.cmds.Send(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.IDResponse{ID: id})
}

// @Summary List notifications
// @Description Newest first, keyset paginated
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 400 {object} httperr.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	var q reqdto.NotificationListQuery
	if !bindQuery(c, &q) {
		return
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	items, next, err := h.q.List(c.Request.Context(), cursor, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationPage(items, next))
}
