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

// LibraryHandler exposes the scholar, book and language catalog endpoints.
type LibraryHandler struct {
	library *service.LibraryService
	uploads *service.UploadService
	tokens  *jwt.Manager
}

// NewLibraryHandler creates a new library handler.
func NewLibraryHandler(library *service.LibraryService, uploads *service.UploadService, tokens *jwt.Manager) *LibraryHandler {
	return &LibraryHandler{library: library, uploads: uploads, tokens: tokens}
}

// RegisterRoutes mounts the catalog routes. Reads take an optional identity
// for follow annotations; mutations are admin-only.
func (h *LibraryHandler) RegisterRoutes(r *gin.RouterGroup) {
	scholars := r.Group("/scholars", middleware.OptionalAuth(h.tokens))
	{
		scholars.GET("", h.ListScholars)
		scholars.GET("/:id", h.GetScholar)
	}
	r.POST("/scholars", middleware.RequireAuth(h.tokens), middleware.RequireRole(domain.RoleAdmin), h.CreateScholar)

	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
	}
	r.POST("/books", middleware.RequireAuth(h.tokens), middleware.RequireRole(domain.RoleAdmin), h.CreateBook)

	r.GET("/languages", h.ListLanguages)
}

// ListScholars handles GET /scholars.
func (h *LibraryHandler) ListScholars(c *gin.Context) {
	limit, offset := pagination(c)
	scholars, total, err := h.library.ListScholars(c.Request.Context(), limit, offset, middleware.GetUserID(c))
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("list scholars failed")
		response.InternalError(c, "Alimler alınamadı")
		return
	}
	response.Success(c, gin.H{"scholars": scholars, "totalCount": total})
}

// GetScholar handles GET /scholars/:id: the scholar plus their books.
func (h *LibraryHandler) GetScholar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	scholar, books, err := h.library.GetScholar(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrScholarNotFound):
			response.NotFound(c, "Alim bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("get scholar failed")
			response.InternalError(c, "Alim alınamadı")
		}
		return
	}
	response.Success(c, gin.H{"scholar": scholar, "books": books})
}

// CreateScholar handles POST /scholars.
func (h *LibraryHandler) CreateScholar(c *gin.Context) {
	var req domain.CreateScholarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scholar, err := h.library.CreateScholar(c.Request.Context(), &req)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("create scholar failed")
		response.InternalError(c, "Alim oluşturulamadı")
		return
	}
	response.Created(c, scholar)
}

// ListBooks handles GET /books.
func (h *LibraryHandler) ListBooks(c *gin.Context) {
	limit, offset := pagination(c)
	books, total, err := h.library.ListBooks(c.Request.Context(), limit, offset)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("list books failed")
		response.InternalError(c, "Kitaplar alınamadı")
		return
	}
	response.Success(c, gin.H{"books": books, "totalCount": total})
}

// GetBook handles GET /books/:id.
func (h *LibraryHandler) GetBook(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	book, err := h.library.GetBook(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			response.NotFound(c, "Kitap bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("get book failed")
			response.InternalError(c, "Kitap alınamadı")
		}
		return
	}
	response.Success(c, book)
}

// CreateBook handles POST /books: a multipart form with optional cover and
// pdf file parts.
func (h *LibraryHandler) CreateBook(c *gin.Context) {
	var req domain.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	coverURL, err := h.storeBookFile(c, "cover", service.FileKindImage)
	if err != nil {
		return
	}
	pdfURL, err := h.storeBookFile(c, "pdf", service.FileKindPDF)
	if err != nil {
		return
	}

	book, err := h.library.CreateBook(c.Request.Context(), &req, coverURL, pdfURL)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrScholarNotFound):
			response.NotFound(c, "Alim bulunamadı")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("create book failed")
			response.InternalError(c, "Kitap oluşturulamadı")
		}
		return
	}
	response.Created(c, book)
}

// storeBookFile uploads an optional form file and enforces its kind. On
// failure it writes the error response and returns a non-nil error.
func (h *LibraryHandler) storeBookFile(c *gin.Context, field string, want service.FileKind) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Dosya okunamadı")
		return "", err
	}
	defer file.Close()

	kind, url, err := h.uploads.Store(c.Request.Context(), fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.BadRequest(c, "Desteklenmeyen dosya türü")
		case errors.Is(err, service.ErrFileTooLarge):
			response.PayloadTooLarge(c, "Dosya boyutu çok büyük")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("book upload failed")
			response.InternalError(c, "Dosya yüklenemedi")
		}
		return "", err
	}
	if kind != want {
		response.BadRequest(c, "Desteklenmeyen dosya türü")
		return "", service.ErrUnsupportedFileType
	}
	return url, nil
}

// ListLanguages handles GET /languages.
func (h *LibraryHandler) ListLanguages(c *gin.Context) {
	languages, err := h.library.ListLanguages(c.Request.Context())
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("list languages failed")
		response.InternalError(c, "Diller alınamadı")
		return
	}
	response.Success(c, languages)
}
