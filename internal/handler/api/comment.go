package api

import (
	"net/http"

	"cuponera-backend/internal/domain/comment"
	reqdto "cuponera-backend/internal/handler/dto/request"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	cmds commands.CommentCommands
	q    queries.CommentQueries
}

func NewCommentHandler(cmds commands.CommentCommands, q queries.CommentQueries) *CommentHandler {
	return &CommentHandler{cmds: cmds, q: q}
}

// @Summary Comment on an actor
// @Description Requires a prior redemption by the actor's group
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResultResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), req.ActorID, clientID, req.Rating, req.Text)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentResult(res))
}

// @Summary Moderate a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body reqdto.UpdateCommentRequest true "Edit"
// @Success 200 {object} resdto.CommentResultResponse
// @Failure 404 {object} httperr.Response
// @Router /comments/{id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.Update(c.Request.Context(), id, req.ToEdit())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentResult(res))
}

// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} resdto.CommentRemovedResponse
// @Failure 404 {object} httperr.Response
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	agg, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CommentRemovedResponse{Aggregate: resdto.FromRating(agg)})
}

// @Summary Comments of an actor
// @Tags comments
// @Produce json
// @Param id path string true "Actor ID"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Success 200 {object} queries.CommentPage
// @Router /actors/{id}/comments [get]
func (h *CommentHandler) ListByActor(c *gin.Context) {
	actorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.CommentPageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.ListByActor(c.Request.Context(), actorID, q.Page, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary My comment on an actor
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param actorId path string true "Actor ID"
// @Success 200 {object} queries.CommentView
// @Failure 404 {object} httperr.Response
// @Router /me/comments/{actorId} [get]
func (h *CommentHandler) Mine(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	actorID, ok := pathID(c, "actorId")
	if !ok {
		return
	}
	view, err := h.q.Mine(c.Request.Context(), actorID, clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if view == nil {
		httperr.Abort(c, comment.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create or edit my comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param actorId path string true "Actor ID"
// @Param request body reqdto.UpsertCommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResultResponse
// @Failure 422 {object} httperr.Response
// @Router /me/comments/{actorId} [put]
func (h *CommentHandler) UpsertMine(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	actorID, ok := pathID(c, "actorId")
	if !ok {
		return
	}
	var req reqdto.UpsertCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.UpsertMine(c.Request.Context(), actorID, clientID, req.Rating, req.Text)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentResult(res))
}

// @Summary Delete my comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param actorId path string true "Actor ID"
// @Success 200 {object} resdto.CommentRemovedResponse
// @Failure 404 {object} httperr.Response
// @Router /me/comments/{actorId} [delete]
func (h *CommentHandler) DeleteMine(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	actorID, ok := pathID(c, "actorId")
	if !ok {
		return
	}
	agg, err := h.cmds.DeleteMine(c.Request.Context(), actorID, clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CommentRemovedResponse{Aggregate: resdto.FromRating(agg)})
}

// @Summary Can I comment on this actor
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param actorId path string true "Actor ID"
// @Success 200 {object} queries.CommentEligibility
// @Router /me/comments/{actorId}/eligibility [get]
func (h *CommentHandler) Eligibility(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	actorID, ok := pathID(c, "actorId")
	if !ok {
		return
	}
	res, err := h.q.Eligibility(c.Request.Context(), actorID, clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
