package api

import (
	"net/http"

	reqdto "cuponera-backend/internal/handler/dto/request"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/handler/middleware"
	"cuponera-backend/internal/pkg/jwt"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary My favorite places
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ItemsResponse[queries.PlaceView]
// @Router /me/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.q.ListDetailed(c.Request.Context(), clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(items))
}

// @Summary My favorite actor ids
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ItemsResponse[uuid.UUID]
// @Router /me/favorites/ids [get]
func (h *FavoriteHandler) ListIDs(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	ids, err := h.q.ListActorIDs(c.Request.Context(), clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewItems(ids))
}

// @Summary Add favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param actorId path string true "Actor ID"
// @Success 200 {object} resdto.FavoriteResponse
// @Failure 404 {object} httperr.Response
// @Router /me/favorites/{actorId} [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	clientID, actorID, ok := h.pair(c)
	if !ok {
		return
	}
	if _, err := h.cmds.Add(c.Request.Context(), clientID, actorID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FavoriteResponse{Favorite: true})
}

// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param actorId path string true "Actor ID"
// @Success 200 {object} resdto.OKResponse
// @Router /me/favorites/{actorId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	clientID, actorID, ok := h.pair(c)
	if !ok {
		return
	}
	removed, err := h.cmds.Remove(c.Request.Context(), clientID, actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKResponse{OK: removed})
}

// @Summary Toggle favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param actorId path string true "Actor ID"
// @Success 200 {object} resdto.FavoriteResponse
// @Router /me/favorites/{actorId}/toggle [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	clientID, actorID, ok := h.pair(c)
	if !ok {
		return
	}
	fav, err := h.cmds.Toggle(c.Request.Context(), clientID, actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FavoriteResponse{Favorite: fav})
}

func (h *FavoriteHandler) pair(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	clientID, ok := currentUser(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	actorID, ok := pathID(c, "actorId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return clientID, actorID, true
}

type ShareHandler struct {
	cmds commands.ShareCommands
}

func NewShareHandler(cmds commands.ShareCommands) *ShareHandler {
	return &ShareHandler{cmds: cmds}
}

// @Summary Record a share
// @Description Anonymous shares are accepted; a client token attributes the share
// @Tags shares
// @Accept json
// @Produce json
// @Param request body reqdto.ShareRequest true "Share"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shares [post]
func (h *ShareHandler) Record(c *gin.Context) {
	var req reqdto.ShareRequest
	if !bindJSON(c, &req) {
		return
	}
	var clientID *uuid.UUID
	if kind, _ := middleware.GetUserKind(c); kind == jwt.KindClient {
		if id, ok := middleware.GetUserID(c); ok {
			clientID = &id
		}
	}
	id, err := h.cmds.Record(c.Request.Context(), req.ToInput(clientID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}
