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

type ActorHandler struct {
	cmds   commands.ActorCommands
	q      queries.ActorQueries
	shares queries.ShareQueries
}

func NewActorHandler(cmds commands.ActorCommands, q queries.ActorQueries, shares queries.ShareQueries) *ActorHandler {
	return &ActorHandler{cmds: cmds, q: q, shares: shares}
}

// @Summary Create actor
// @Tags actors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateActorRequest true "Actor"
// @Success 201 {object} queries.ActorView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /actors [post]
func (h *ActorHandler) Create(c *gin.Context) {
	var req reqdto.CreateActorRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id, err := h.cmds.CreateActor(c.Request.Context(), in)
	h.respondCreated(c, id, err)
}

// @Summary Create staff under my local
// @Tags actors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateActorRequest true "Staff member"
// @Success 201 {object} queries.ActorView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /me/staff [post]
func (h *ActorHandler) CreateStaff(c *gin.Context) {
	creatorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateActorRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id, err := h.cmds.CreateStaff(c.Request.Context(), creatorID, in)
	h.respondCreated(c, id, err)
}

// @Summary Update my promotion
// @Tags actors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 200 {object} queries.ActorView
// @Router /me/promotion [put]
func (h *ActorHandler) UpdatePromotion(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.PromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	promo, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.UpdatePromotion(c.Request.Context(), actorID, promo); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, actorID)
}

// @Summary Get actor
// @Tags actors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Actor ID"
// @Success 200 {object} queries.ActorView
// @Failure 404 {object} httperr.Response
// @Router /actors/{id} [get]
func (h *ActorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, id)
}

// @Summary My team
// @Description Actors whose responsible party is the caller
// @Tags actors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ItemsResponse[queries.ActorView]
// @Router /me/team [get]
func (h *ActorHandler) Team(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.q.ListByResponsible(c.Request.Context(), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary Places with a promotion
// @Tags places
// @Produce json
// @Param city_ids query []string false "City filter" collectionFormat(multi)
// @Success 200 {object} resdto.ItemsResponse[queries.PlaceView]
// @Failure 400 {object} httperr.Response
// @Router /places [get]
func (h *ActorHandler) Places(c *gin.Context) {
	var q reqdto.CitiesQuery
	if !bindQuery(c, &q) {
		return
	}
	cityIDs, err := q.Parse()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid city_ids", nil)
		return
	}
	items, err := h.q.ListByCitiesWithPromo(c.Request.Context(), cityIDs)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary Business mini profile
// @Description Promotion, rating and recent comments of the actor's local
// @Tags actors
// @Produce json
// @Param id path string true "Actor ID"
// @Success 200 {object} queries.BusinessMini
// @Failure 404 {object} httperr.Response
// @Router /actors/{id}/mini [get]
func (h *ActorHandler) Mini(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	mini, err := h.q.BusinessMini(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, mini)
}

// @Summary Share counts per channel
// @Tags shares
// @Produce json
// @Security BearerAuth
// @Param id path string true "Actor ID"
// @Success 200 {object} queries.ShareSummary
// @Router /actors/{id}/shares/summary [get]
func (h *ActorHandler) ShareSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.shares.SummaryByActor(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ActorHandler) respondCreated(c *gin.Context, id uuid.UUID, err error) {
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

func (h *ActorHandler) respond(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
