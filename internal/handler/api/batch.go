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

type BatchHandler struct {
	cmds commands.BatchCommands
	q    queries.BatchQueries
}

func NewBatchHandler(cmds commands.BatchCommands, q queries.BatchQueries) *BatchHandler {
	return &BatchHandler{cmds: cmds, q: q}
}

// @Summary Create batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBatchRequest true "Batch"
// @Success 201 {object} queries.BatchView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /batches [post]
func (h *BatchHandler) Create(c *gin.Context) {
	var req reqdto.CreateBatchRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Param request body reqdto.UpdateBatchRequest true "Patch"
// @Success 200 {object} queries.BatchView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /batches/{id} [patch]
func (h *BatchHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBatchRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.Get(c)
}

// @Summary Delete batch
// @Description Rejected while coupons reference the batch
// @Tags batches
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /batches/{id} [delete]
func (h *BatchHandler) Delete(c *gin.Context) {
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

// @Summary Get batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Success 200 {object} queries.BatchView
// @Failure 404 {object} httperr.Response
// @Router /batches/{id} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ItemsResponse[queries.BatchView]
// @Router /batches [get]
func (h *BatchHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}
