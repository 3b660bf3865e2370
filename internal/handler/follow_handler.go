package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mustafayildiz-m/iw-project/internal/middleware"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/internal/service"
	"github.com/mustafayildiz-m/iw-project/pkg/jwt"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
	"github.com/mustafayildiz-m/iw-project/pkg/response"
)

// FollowHandler exposes the follow-graph endpoints.
type FollowHandler struct {
	follows *service.FollowService
	tokens  *jwt.Manager
}

// NewFollowHandler creates a new follow handler.
func NewFollowHandler(follows *service.FollowService, tokens *jwt.Manager) *FollowHandler {
	return &FollowHandler{follows: follows, tokens: tokens}
}

// RegisterRoutes mounts the follow routes; all of them require auth.
func (h *FollowHandler) RegisterRoutes(r *gin.RouterGroup) {
	follows := r.Group("/follows", middleware.RequireAuth(h.tokens))
	{
		follows.POST("/users/:id", h.FollowUser)
		follows.DELETE("/users/:id", h.UnfollowUser)
		follows.GET("/followers", h.Followers)
		follows.GET("/following", h.Following)
		follows.POST("/scholars/:id", h.FollowScholar)
		follows.DELETE("/scholars/:id", h.UnfollowScholar)
	}
	r.GET("/who-to-follow", middleware.RequireAuth(h.tokens), h.WhoToFollow)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Geçersiz id")
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// FollowUser handles POST /follows/users/:id.
func (h *FollowHandler) FollowUser(c *gin.Context) {
	targetID, ok := paramID(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	err := h.follows.FollowUser(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			response.BadRequest(c, "Kendinizi takip edemezsiniz")
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "Kullanıcı bulunamadı")
		case errors.Is(err, repository.ErrAlreadyFollowing):
			response.Conflict(c, "Bu kullanıcıyı zaten takip ediyorsunuz")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("follow user failed")
			response.InternalError(c, "Takip işlemi başarısız oldu")
		}
		return
	}
	response.Created(c, gin.H{"following": true})
}

// UnfollowUser handles DELETE /follows/users/:id.
func (h *FollowHandler) UnfollowUser(c *gin.Context) {
	targetID, ok := paramID(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	err := h.follows.UnfollowUser(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFollowNotFound):
			response.NotFound(c, "Takip ilişkisi bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("unfollow user failed")
			response.InternalError(c, "Takipten çıkma işlemi başarısız oldu")
		}
		return
	}
	response.Success(c, gin.H{"following": false})
}

// Followers handles GET /follows/followers.
func (h *FollowHandler) Followers(c *gin.Context) {
	limit, offset := pagination(c)
	result, err := h.follows.Followers(c.Request.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("list followers failed")
		response.InternalError(c, "Takipçiler alınamadı")
		return
	}
	response.Success(c, result)
}

// Following handles GET /follows/following.
func (h *FollowHandler) Following(c *gin.Context) {
	limit, offset := pagination(c)
	result, err := h.follows.Following(c.Request.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("list following failed")
		response.InternalError(c, "Takip edilenler alınamadı")
		return
	}
	response.Success(c, result)
}

// FollowScholar handles POST /follows/scholars/:id.
func (h *FollowHandler) FollowScholar(c *gin.Context) {
	scholarID, ok := paramID(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	err := h.follows.FollowScholar(c.Request.Context(), userID, scholarID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrScholarNotFound):
			response.NotFound(c, "Alim bulunamadı")
		case errors.Is(err, repository.ErrAlreadyFollowing):
			response.Conflict(c, "Bu alimi zaten takip ediyorsunuz")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("follow scholar failed")
			response.InternalError(c, "Takip işlemi başarısız oldu")
		}
		return
	}
	response.Created(c, gin.H{"following": true})
}

// UnfollowScholar handles DELETE /follows/scholars/:id.
func (h *FollowHandler) UnfollowScholar(c *gin.Context) {
	scholarID, ok := paramID(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	err := h.follows.UnfollowScholar(c.Request.Context(), userID, scholarID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFollowNotFound):
			response.NotFound(c, "Takip ilişkisi bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("unfollow scholar failed")
			response.InternalError(c, "Takipten çıkma işlemi başarısız oldu")
		}
		return
	}
	response.Success(c, gin.H{"following": false})
}

// WhoToFollow handles GET /who-to-follow.
func (h *FollowHandler) WhoToFollow(c *gin.Context) {
	result, err := h.follows.WhoToFollow(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("who-to-follow failed")
		response.InternalError(c, "Öneriler alınamadı")
		return
	}
	response.Success(c, result)
}
