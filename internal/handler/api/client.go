package api

import (
	"net/http"

	reqdto "cuponera-backend/internal/handler/dto/request"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	cmds commands.ClientCommands
	q    queries.ClientQueries
}

func NewClientHandler(cmds commands.ClientCommands, q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{cmds: cmds, q: q}
}

// @Summary Register client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterClientRequest true "Client"
// @Success 201 {object} queries.ClientView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /clients/register [post]
func (h *ClientHandler) Register(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), in)
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

// @Summary My profile
// @Description Personal data plus favorites, coupons, scans, cities and top categories
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ClientProfile
// @Router /me/profile [get]
func (h *ClientHandler) Profile(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.q.Profile(c.Request.Context(), clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Update my profile
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateClientRequest true "Changes"
// @Success 200 {object} queries.ClientView
// @Failure 409 {object} httperr.Response
// @Router /me/profile [patch]
func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateMe(c.Request.Context(), clientID, req.ToDomain()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
