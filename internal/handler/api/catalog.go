package api

import (
	"net/http"

	reqdto "cuponera-backend/internal/handler/dto/request"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List active cities
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.ItemsResponse[queries.CityRef]
// @Router /catalog/cities [get]
func (h *CatalogHandler) Cities(c *gin.Context) {
	items, err := h.q.Cities(c.Request.Context())
	respondItems(c, items, err)
}

// @Summary Cities offered on sign-up forms
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.ItemsResponse[queries.CityRef]
// @Router /catalog/cities/registration [get]
func (h *CatalogHandler) RegistrationCities(c *gin.Context) {
	items, err := h.q.RegistrationCities(c.Request.Context())
	respondItems(c, items, err)
}

// @Summary Cities for the promotions filter
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.ItemsResponse[queries.CityRef]
// @Router /catalog/cities/promotions [get]
func (h *CatalogHandler) PromotionCities(c *gin.Context) {
	items, err := h.q.PromotionCities(c.Request.Context())
	respondItems(c, items, err)
}

// @Summary List active categories
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.ItemsResponse[queries.CategoryRef]
// @Router /catalog/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	items, err := h.q.Categories(c.Request.Context())
	respondItems(c, items, err)
}

// @Summary Create city
// @Tags cities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCityRequest true "City"
// @Success 201 {object} queries.CityView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cities [post]
func (h *CatalogHandler) CreateCity(c *gin.Context) {
	var req reqdto.CreateCityRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateCity(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCity(c, http.StatusCreated, id)
}

// @Summary List cities
// @Tags cities
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name contains"
// @Param active query bool false "Active flag"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} queries.CatalogPage[queries.CityView]
// @Router /cities [get]
func (h *CatalogHandler) ListCities(c *gin.Context) {
	var q reqdto.CatalogListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.ListCities(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get city
// @Tags cities
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 200 {object} queries.CityView
// @Failure 404 {object} httperr.Response
// @Router /cities/{id} [get]
func (h *CatalogHandler) GetCity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondCity(c, http.StatusOK, id)
}

// @Summary Update city
// @Tags cities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Param request body reqdto.UpdateCityRequest true "Fields to change"
// @Success 200 {object} queries.CityView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cities/{id} [patch]
func (h *CatalogHandler) UpdateCity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCityRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateCity(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCity(c, http.StatusOK, id)
}

// @Summary Activate city
// @Tags cities
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 200 {object} queries.CityView
// @Router /cities/{id}/activate [post]
func (h *CatalogHandler) ActivateCity(c *gin.Context) { h.setCityActive(c, true) }

// @Summary Deactivate city
// @Tags cities
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 200 {object} queries.CityView
// @Router /cities/{id}/deactivate [post]
func (h *CatalogHandler) DeactivateCity(c *gin.Context) { h.setCityActive(c, false) }

// @Summary Delete city
// @Description Refused while a batch or an actor lists the city
// @Tags cities
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 204
// @Failure 409 {object} httperr.Response
// @Router /cities/{id} [delete]
func (h *CatalogHandler) DeleteCity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCity(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} queries.CategoryView
// @Failure 409 {object} httperr.Response
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateCategory(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCategory(c, http.StatusCreated, id)
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name contains"
// @Param active query bool false "Active flag"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} queries.CatalogPage[queries.CategoryView]
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var q reqdto.CatalogListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.ListCategories(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} queries.CategoryView
// @Failure 404 {object} httperr.Response
// @Router /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondCategory(c, http.StatusOK, id)
}

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} queries.CategoryView
// @Router /categories/{id} [patch]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateCategory(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCategory(c, http.StatusOK, id)
}

// @Summary Activate category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} queries.CategoryView
// @Router /categories/{id}/activate [post]
func (h *CatalogHandler) ActivateCategory(c *gin.Context) { h.setCategoryActive(c, true) }

// @Summary Deactivate category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} queries.CategoryView
// @Router /categories/{id}/deactivate [post]
func (h *CatalogHandler) DeactivateCategory(c *gin.Context) { h.setCategoryActive(c, false) }

// @Summary Delete category
// @Description Refused while an actor lists the category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 409 {object} httperr.Response
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCategory(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) setCityActive(c *gin.Context, active bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.SetCityActive(c.Request.Context(), id, active); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCity(c, http.StatusOK, id)
}

func (h *CatalogHandler) setCategoryActive(c *gin.Context, active bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.SetCategoryActive(c.Request.Context(), id, active); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCategory(c, http.StatusOK, id)
}

func (h *CatalogHandler) respondCity(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetCity(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, view)
}

func (h *CatalogHandler) respondCategory(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetCategory(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, view)
}
