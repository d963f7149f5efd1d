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
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
	q    queries.RedemptionQueries
}

func NewRedemptionHandler(cmds commands.RedemptionCommands, q queries.RedemptionQueries) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds, q: q}
}

// @Summary Register a scan
// @Description Redeems the coupon for the authenticated actor's group
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Coupon to redeem"
// @Success 201 {object} resdto.ScanResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /redemptions [post]
func (h *RedemptionHandler) Register(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.ScanRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.RegisterScan(c.Request.Context(), req.CouponID, actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromScanResult(res))
}

// @Summary Validate a scan without registering it
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Coupon to check"
// @Success 200 {object} resdto.ScanValidationResponse
// @Router /redemptions/validate [post]
func (h *RedemptionHandler) Validate(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.ScanRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.ValidateBeforeRegister(c.Request.Context(), req.CouponID, actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ScanValidationResponse{Valid: res.Valid, Message: res.Message})
}

// @Summary Redemptions in a date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.ItemsResponse[queries.RedemptionView]
// @Failure 400 {object} httperr.Response
// @Router /reports/redemptions [get]
func (h *RedemptionHandler) ListByDateRange(c *gin.Context) {
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
	items, err := h.q.ListByDateRange(c.Request.Context(), start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary Redemptions of my group
// @Description Scans by every member of the caller's base local-admin group
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param start query string false "YYYY-MM-DD"
// @Param end query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.ItemsResponse[queries.RedemptionView]
// @Router /me/redemptions [get]
func (h *RedemptionHandler) ListMine(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	r, err := q.Parse()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := h.q.ListByGroup(c.Request.Context(), actorID, r)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary Redemptions scanned by an actor
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Actor ID"
// @Success 200 {object} resdto.ItemsResponse[queries.RedemptionView]
// @Router /redemptions/actors/{id} [get]
func (h *RedemptionHandler) ListByActor(c *gin.Context) {
	actorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListByActor(c.Request.Context(), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary Count redemptions of a coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CountResponse
// @Router /coupons/{id}/redemptions/count [get]
func (h *RedemptionHandler) CountByCoupon(c *gin.Context) {
	couponID, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := h.q.CountByCoupon(c.Request.Context(), couponID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CountResponse{Count: n})
}
