package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	reqdto "spa-promotions/internal/handler/dto/request"
	resdto "spa-promotions/internal/handler/dto/response"
	"spa-promotions/internal/handler/middleware"
	"spa-promotions/internal/usecase/commands"
	"spa-promotions/internal/usecase/queries"
)

type PromotionHandler struct {
	promotionCommands commands.PromotionCommands
	composerCommands  commands.ComposerCommands
	promotionQueries  queries.PromotionQueries
}

func NewPromotionHandler(
	promotionCommands commands.PromotionCommands,
	composerCommands commands.ComposerCommands,
	promotionQueries queries.PromotionQueries,
) *PromotionHandler {
	return &PromotionHandler{
		promotionCommands: promotionCommands,
		composerCommands:  composerCommands,
		promotionQueries:  promotionQueries,
	}
}

// @Summary Propose promotion
// @Description Open a new promotion proposal in the design stage
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProposePromotionRequest true "Proposal"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /promotions [post]
func (h *PromotionHandler) Propose(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.ProposePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rec, err := h.promotionCommands.Propose(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewPromotionResponse(rec))
}

// @Summary Submit for approval
// @Description Attach marketing fields and move the proposal to approval
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.SubmitForApprovalRequest true "Marketing fields"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /promotions/{id}/submit [post]
func (h *PromotionHandler) Submit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.SubmitForApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rec, err := h.promotionCommands.SubmitForApproval(c.Request.Context(), c.Param("id"), req.ToFields(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPromotionResponse(rec))
}

// @Summary Resolve approval
// @Description Approve or reject a proposal awaiting approval
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.ResolveApprovalRequest true "Decision"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /promotions/{id}/resolve [post]
func (h *PromotionHandler) Resolve(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.ResolveApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rec, err := h.promotionCommands.ResolveApproval(c.Request.Context(), c.Param("id"), *req.Approved, req.ManagementNotes, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPromotionResponse(rec))
}

// @Summary Edit promotion
// @Description Overwrite proposal content without changing its status
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.EditPromotionRequest true "Content edit"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /promotions/{id} [patch]
func (h *PromotionHandler) Edit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.EditPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rec, err := h.promotionCommands.Edit(c.Request.Context(), c.Param("id"), req.ToEdit(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPromotionResponse(rec))
}

// @Summary Delete promotion
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	if err := h.promotionCommands.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Active promotions
// @Description Approved promotions still running, earliest start first
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PromotionListItem
// @Router /promotions/active [get]
func (h *PromotionHandler) Active(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	items, err := h.promotionQueries.Active(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Proposal history
// @Description Every proposal regardless of outcome, optionally filtered by month
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {array} queries.PromotionListItem
// @Router /promotions [get]
func (h *PromotionHandler) History(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	if month < 0 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid month filter",
		})
		return
	}

	items, err := h.promotionQueries.History(c.Request.Context(), time.Month(month), year, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Promotion detail
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [get]
func (h *PromotionHandler) ByID(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	view, err := h.promotionQueries.ByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Compose draft lines
// @Description Apply one composer operation to working line items and return the result
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ComposeRequest true "Working state and operation"
// @Success 200 {object} resdto.ComposeResponse
// @Failure 400 {object} map[string]string
// @Router /promotions/compose [post]
func (h *PromotionHandler) Compose(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.composerCommands.Compose(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewComposeResponse(result))
}
