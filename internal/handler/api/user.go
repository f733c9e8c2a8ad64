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

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rec, err := h.userCommands.CreateUser(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewUserResponse(rec))
}

// @Summary Deactivate user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	rec, err := h.userCommands.DeactivateUser(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewUserResponse(rec))
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UserView
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		missingIdentity(c)
		return
	}

	views, err := h.userQueries.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
