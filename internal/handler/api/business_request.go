package api

import (
	"net/http"

	reqdto "cuponera-backend/internal/handler/dto/request"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BusinessRequestHandler struct {
	cmds commands.BusinessRequestCommands
	q    queries.BusinessRequestQueries
}

func NewBusinessRequestHandler(cmds commands.BusinessRequestCommands, q queries.BusinessRequestQueries) *BusinessRequestHandler {
	return &BusinessRequestHandler{cmds: cmds, q: q}
}

// @Summary Submit a business sign-up request
// @Tags business-requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBusinessRequestRequest true "Request"
// @Success 201 {object} queries.BusinessRequestView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /business-requests [post]
func (h *BusinessRequestHandler) Create(c *gin.Context) {
	var req reqdto.CreateBusinessRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Check whether an email can submit a request
// @Tags business-requests
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} resdto.EmailAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /business-requests/check-email [get]
func (h *BusinessRequestHandler) CheckEmail(c *gin.Context) {
	var q reqdto.EmailQuery
	if !bindQuery(c, &q) {
		return
	}
	available, err := h.q.EmailAvailable(c.Request.Context(), q.Email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.EmailAvailabilityResponse{Email: q.Email, Available: available})
}

// @Summary List business requests
// @Tags business-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDIENTE, CONTACTADO, APROBADO or RECHAZADO"
// @Param cursor query string false "Opaque cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BusinessRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /business-requests [get]
func (h *BusinessRequestHandler) List(c *gin.Context) {
	var q reqdto.BusinessRequestListQuery
	if !bindQuery(c, &q) {
		return
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	items, next, err := h.q.List(c.Request.Context(), q.Status, cursor, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusinessRequestPage(items, next))
}

// @Summary Get business request
// @Tags business-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} queries.BusinessRequestView
// @Failure 404 {object} httperr.Response
// @Router /business-requests/{id} [get]
func (h *BusinessRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Update business request
// @Description The email is fixed once submitted
// @Tags business-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.UpdateBusinessRequestRequest true "Fields to change"
// @Success 200 {object} queries.BusinessRequestView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /business-requests/{id} [patch]
func (h *BusinessRequestHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBusinessRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete business request
// @Tags business-requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /business-requests/{id} [delete]
func (h *BusinessRequestHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BusinessRequestHandler) respond(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, view)
}
