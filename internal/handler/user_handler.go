package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/middleware"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/internal/service"
	"github.com/mustafayildiz-m/iw-project/pkg/jwt"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
	"github.com/mustafayildiz-m/iw-project/pkg/response"
)

// UserHandler exposes /users endpoints.
type UserHandler struct {
	users  *service.UserService
	tokens *jwt.Manager
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users *service.UserService, tokens *jwt.Manager) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

// RegisterRoutes mounts the user routes.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users", middleware.RequireAuth(h.tokens))
	{
		users.GET("/:id", h.Get)
		users.PUT("/me", h.UpdateMe)
		users.DELETE("/me", h.DeactivateMe)
	}
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "Kullanıcı bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("get user failed")
			response.InternalError(c, "Kullanıcı alınamadı")
		}
		return
	}
	response.Success(c, user)
}

// UpdateMe handles PUT /users/me: the requester updates their own profile.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.users.Update(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "Kullanıcı bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("update profile failed")
			response.InternalError(c, "Profil güncellenemedi")
		}
		return
	}
	response.Success(c, user)
}

// DeactivateMe handles DELETE /users/me: the account is disabled, not
// deleted.
func (h *UserHandler) DeactivateMe(c *gin.Context) {
	if err := h.users.Deactivate(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("deactivate failed")
		response.InternalError(c, "Hesap devre dışı bırakılamadı")
		return
	}
	response.Success(c, gin.H{"deactivated": true})
}
