package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/middleware"
	"github.com/mustafayildiz-m/iw-project/internal/service"
	"github.com/mustafayildiz-m/iw-project/pkg/jwt"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
	"github.com/mustafayildiz-m/iw-project/pkg/response"
)

// SearchHandler exposes /search endpoints.
type SearchHandler struct {
	search *service.SearchService
	tokens *jwt.Manager
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(search *service.SearchService, tokens *jwt.Manager) *SearchHandler {
	return &SearchHandler{search: search, tokens: tokens}
}

// RegisterRoutes mounts the search routes. The general and per-type searches
// take an optional identity; follow-graph searches require one.
func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search", middleware.OptionalAuth(h.tokens))
	{
		search.GET("", h.General)
		search.GET("/users", h.Users)
		search.GET("/scholars", h.Scholars)
	}
	authed := r.Group("/search", middleware.RequireAuth(h.tokens))
	{
		authed.GET("/followers", h.Followers)
		authed.GET("/following", h.Following)
	}
}

func bindSearch(c *gin.Context) (*domain.SearchRequest, bool) {
	var req domain.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Arama sorgusu gerekli")
		return nil, false
	}
	return &req, true
}

// General handles GET /search: the merged search. A `type` of users or
// scholars narrows the page to one entity but keeps the type-tagged envelope.
func (h *SearchHandler) General(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}
	requesterID := middleware.GetUserID(c)

	result, err := h.search.GeneralSearch(c.Request.Context(), req.Query, req.Type, req.Limit, req.Offset, requesterID)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Str(log.FieldQuery, req.Query).Msg("general search failed")
		response.InternalError(c, "Arama başarısız oldu")
		return
	}
	response.Success(c, result)
}

// Users handles GET /search/users.
func (h *SearchHandler) Users(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.search.SearchUsers(c.Request.Context(), req.Query, req.Limit, req.Offset, middleware.GetUserID(c))
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Str(log.FieldQuery, req.Query).Msg("user search failed")
		response.InternalError(c, "Arama başarısız oldu")
		return
	}
	response.Success(c, result)
}

// Scholars handles GET /search/scholars.
func (h *SearchHandler) Scholars(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.search.SearchScholars(c.Request.Context(), req.Query, req.Limit, req.Offset, middleware.GetUserID(c))
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Str(log.FieldQuery, req.Query).Msg("scholar search failed")
		response.InternalError(c, "Arama başarısız oldu")
		return
	}
	response.Success(c, result)
}

// Followers handles GET /search/followers.
func (h *SearchHandler) Followers(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.search.SearchFollowers(c.Request.Context(), req.Query, req.Limit, req.Offset, middleware.GetUserID(c))
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Str(log.FieldQuery, req.Query).Msg("follower search failed")
		response.InternalError(c, "Arama başarısız oldu")
		return
	}
	response.Success(c, result)
}

// Following handles GET /search/following.
func (h *SearchHandler) Following(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.search.SearchFollowing(c.Request.Context(), req.Query, req.Limit, req.Offset, middleware.GetUserID(c))
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Str(log.FieldQuery, req.Query).Msg("following search failed")
		response.InternalError(c, "Arama başarısız oldu")
		return
	}
	response.Success(c, result)
}
