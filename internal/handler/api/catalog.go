package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "spa-promotions/internal/handler/dto/request"
	resdto "spa-promotions/internal/handler/dto/response"
	"spa-promotions/internal/handler/middleware"
	"spa-promotions/internal/usecase/commands"
	"spa-promotions/internal/usecase/queries"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Create service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rec, err := h.catalogCommands.CreateService(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewServiceResponse(rec))
}

// @Summary Update service
// @Description Partial update; promo price is re-derived when the original price or percent changes
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [patch]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rec, err := h.catalogCommands.UpdateService(c.Request.Context(), c.Param("id"), req.ToCommand(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewServiceResponse(rec))
}

// @Summary Delete service
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	if err := h.catalogCommands.DeleteService(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Services grouped by category
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CategoryGroupView
// @Router /services [get]
func (h *CatalogHandler) Grouped(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	groups, err := h.catalogQueries.Grouped(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// @Summary Service detail
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} queries.ServiceView
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) ServiceByID(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	view, err := h.catalogQueries.ServiceByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Category labels
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	labels, err := h.catalogQueries.Categories(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}

// @Summary Add category
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.AddCategoryRequest true "Label"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /categories [post]
func (h *CatalogHandler) AddCategory(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.AddCategory(c.Request.Context(), req.Label, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rename category
// @Description Rewrites the label on every service in the category. On partial failure the response details which services moved.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RenameCategoryRequest true "Labels"
// @Success 200 {object} resdto.RenameCategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /categories/rename [post]
func (h *CatalogHandler) RenameCategory(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	renamed, err := h.catalogCommands.RenameCategory(c.Request.Context(), req.From, req.To, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RenameCategoryResponse{Renamed: renamed})
}
