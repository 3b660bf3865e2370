package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/middleware"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/internal/service"
	"github.com/mustafayildiz-m/iw-project/pkg/jwt"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
	"github.com/mustafayildiz-m/iw-project/pkg/response"
)

// PostHandler exposes /user-posts endpoints.
type PostHandler struct {
	posts   *service.PostService
	uploads *service.UploadService
	tokens  *jwt.Manager
}

// NewPostHandler creates a new post handler.
func NewPostHandler(posts *service.PostService, uploads *service.UploadService, tokens *jwt.Manager) *PostHandler {
	return &PostHandler{posts: posts, uploads: uploads, tokens: tokens}
}

// RegisterRoutes mounts the post routes; all of them require auth.
func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/user-posts", middleware.RequireAuth(h.tokens))
	{
		posts.POST("", h.Create)
		posts.GET("", h.List)
		posts.GET("/timeline/:id", h.Timeline)
		posts.GET("/shared-profile/:type/:id", h.SharedProfile)
		posts.GET("/user/:id", h.ListByUser)
		posts.GET("/:id", h.Get)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /user-posts: a multipart form with an optional file
// routed to image or video by extension.
func (h *PostHandler) Create(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "İçerik alanı zorunludur")
		return
	}
	userID := middleware.GetUserID(c)

	var imageURL, videoURL string
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.InternalError(c, "Dosya okunamadı")
			return
		}
		defer file.Close()

		kind, url, err := h.uploads.Store(c.Request.Context(), fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"), file)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnsupportedFileType):
				response.BadRequest(c, "Sadece resim veya video yükleyebilirsiniz.")
			case errors.Is(err, service.ErrFileTooLarge):
				response.PayloadTooLarge(c, "Dosya boyutu çok büyük")
			default:
				log.Ctx(c.Request.Context()).Error().Err(err).Msg("post upload failed")
				response.InternalError(c, "Dosya yüklenemedi")
			}
			return
		}

		switch kind {
		case service.FileKindImage:
			imageURL = url
		case service.FileKindVideo:
			videoURL = url
		default:
			response.BadRequest(c, "Sadece resim veya video yükleyebilirsiniz.")
			return
		}
	}

	post, err := h.posts.Create(c.Request.Context(), userID, &req, imageURL, videoURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSharedType):
			response.BadRequest(c, "Geçersiz paylaşım türü")
		case isNotFound(err):
			response.NotFound(c, "Paylaşılan içerik bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("create post failed")
			response.InternalError(c, "Gönderi oluşturulamadı")
		}
		return
	}

	response.Created(c, post)
}

// List handles GET /user-posts.
func (h *PostHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	posts, err := h.posts.List(c.Request.Context(), limit, offset)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("list posts failed")
		response.InternalError(c, "Gönderiler alınamadı")
		return
	}
	response.Success(c, posts)
}

// Timeline handles GET /user-posts/timeline/:id: the feed of the given user,
// their own posts plus posts of everyone they follow.
func (h *PostHandler) Timeline(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)
	language := c.Query("language")

	posts, err := h.posts.Timeline(c.Request.Context(), userID, language, limit, offset)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("timeline failed")
		response.InternalError(c, "Zaman akışı alınamadı")
		return
	}
	response.Success(c, posts)
}

// SharedProfile handles GET /user-posts/shared-profile/:type/:id: resolves
// the entity behind a shared reference.
func (h *PostHandler) SharedProfile(c *gin.Context) {
	rawType := c.Param("type")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Geçersiz id")
		return
	}

	data, err := h.posts.SharedProfile(c.Request.Context(), rawType, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSharedType):
			response.BadRequest(c, "Geçersiz paylaşım türü")
		case isNotFound(err):
			response.NotFound(c, "Paylaşılan içerik bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("shared profile failed")
			response.InternalError(c, "Profil alınamadı")
		}
		return
	}
	response.Success(c, data)
}

// ListByUser handles GET /user-posts/user/:id.
func (h *PostHandler) ListByUser(c *gin.Context) {
	targetID, ok := paramID(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	posts, err := h.posts.ListByUser(c.Request.Context(), targetID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "Kullanıcı bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("list user posts failed")
			response.InternalError(c, "Gönderiler alınamadı")
		}
		return
	}
	response.Success(c, posts)
}

// Get handles GET /user-posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := paramID(c)
	if !ok {
		return
	}

	post, err := h.posts.Get(c.Request.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			response.NotFound(c, "Gönderi bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("get post failed")
			response.InternalError(c, "Gönderi alınamadı")
		}
		return
	}
	response.Success(c, post)
}

// Update handles PUT /user-posts/:id.
func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := paramID(c)
	if !ok {
		return
	}

	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.posts.Update(c.Request.Context(), middleware.GetUserID(c), postID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			response.NotFound(c, "Gönderi bulunamadı")
		case errors.Is(err, service.ErrNotPostOwner):
			response.Forbidden(c, "Bu gönderi üzerinde yetkiniz yok")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("update post failed")
			response.InternalError(c, "Gönderi güncellenemedi")
		}
		return
	}
	response.Success(c, post)
}

// Delete handles DELETE /user-posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := paramID(c)
	if !ok {
		return
	}

	err := h.posts.Delete(c.Request.Context(), middleware.GetUserID(c), middleware.GetRole(c), postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			response.NotFound(c, "Gönderi bulunamadı")
		case errors.Is(err, service.ErrNotPostOwner):
			response.Forbidden(c, "Bu gönderi üzerinde yetkiniz yok")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("delete post failed")
			response.InternalError(c, "Gönderi silinemedi")
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrUserNotFound) ||
		errors.Is(err, repository.ErrScholarNotFound) ||
		errors.Is(err, repository.ErrBookNotFound) ||
		errors.Is(err, repository.ErrArticleNotFound)
}
