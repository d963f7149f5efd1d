package api

import (
	"net/http"

	reqdto "cuponera-backend/internal/handler/dto/request"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/pkg/localtime"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} queries.CouponView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
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

// @Summary Generate a coupon series
// @Description Creates count INACTIVE coupons continuing the batch sequence
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateCouponsRequest true "Generate request"
// @Success 201 {object} resdto.GenerateCouponsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/generate [post]
func (h *CouponHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateCouponsRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.GenerateBatch(c.Request.Context(), commands.GenerateBatchInput{
		BatchID:     req.BatchID,
		Count:       req.Count,
		ActivatedAt: req.ActivatedAt,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGenerateBatch(res))
}

// @Summary Activate coupon by sequence
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SequenceRequest true "Batch and sequence"
// @Success 200 {object} queries.CouponView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /coupons/activate [post]
func (h *CouponHandler) Activate(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.SequenceRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.ActivateBySequence(c.Request.Context(), req.BatchID, req.Sequence, actorID)
	h.respondCoupon(c, id, err)
}

// @Summary Reset coupon by sequence
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SequenceRequest true "Batch and sequence"
// @Success 200 {object} queries.CouponView
// @Failure 404 {object} httperr.Response
// @Router /coupons/deactivate [post]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	var req reqdto.SequenceRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.DeactivateBySequence(c.Request.Context(), req.BatchID, req.Sequence)
	h.respondCoupon(c, id, err)
}

// @Summary Increment scan counter
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id}/scan-count [post]
func (h *CouponHandler) IncrementScan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.IncrementScan(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Assign coupon to client
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.AssignCouponRequest true "Assignment"
// @Success 200 {object} queries.CouponView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id}/assign [post]
func (h *CouponHandler) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AssignCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.cmds.AssignToClient(c.Request.Context(), id, req.ClientID, req.Override)
	h.respondCoupon(c, id, err)
}

// @Summary Delete coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
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

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} queries.CouponView
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondCoupon(c, id, nil)
}

// @Summary Coupon detail
// @Description Coupon, batch and the places where it was or can be redeemed
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} queries.CouponDetail
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id}/detail [get]
func (h *CouponHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.Detail(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary List coupons of a batch
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Success 200 {object} resdto.ItemsResponse[queries.CouponView]
// @Failure 404 {object} httperr.Response
// @Router /batches/{id}/coupons [get]
func (h *CouponHandler) ListByBatch(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListByBatch(c.Request.Context(), batchID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary Coupons activated in a date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.ItemsResponse[queries.CouponView]
// @Failure 400 {object} httperr.Response
// @Router /reports/coupons/activated [get]
func (h *CouponHandler) ListByActivationRange(c *gin.Context) {
	var q reqdto.RequiredDateRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	start, err := localtime.ParseDate(q.Start)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	end, err := localtime.ParseDate(q.End)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := h.q.ListByActivationRange(c.Request.Context(), start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary My cuponeras
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param only_active query bool false "Only ACTIVE coupons"
// @Success 200 {object} resdto.ItemsResponse[queries.CuponeraItem]
// @Router /me/cuponeras [get]
func (h *CouponHandler) MyCuponeras(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	h.cuponeras(c, clientID)
}

// @Summary Cuponeras of a client
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param only_active query bool false "Only ACTIVE coupons"
// @Success 200 {object} resdto.ItemsResponse[queries.CuponeraItem]
// @Router /clients/{id}/cuponeras [get]
func (h *CouponHandler) ClientCuponeras(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.cuponeras(c, clientID)
}

func (h *CouponHandler) cuponeras(c *gin.Context, clientID uuid.UUID) {
	var q reqdto.CuponerasQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.q.ListClientCuponeras(c.Request.Context(), clientID, q.OnlyActive)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

func (h *CouponHandler) respondCoupon(c *gin.Context, id uuid.UUID, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
