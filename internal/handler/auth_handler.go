package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/service"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
	"github.com/mustafayildiz-m/iw-project/pkg/response"
)

// AuthHandler exposes /auth endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes mounts the auth routes on the given group.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", h.Me)
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, "Bu email ile zaten bir kullanıcı var.")
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, "Bu kullanıcı adı zaten alınmış.")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("register failed")
			response.InternalError(c, "Kayıt işlemi başarısız oldu")
		}
		return
	}

	response.Created(c, user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "Geçersiz email veya şifre")
		case errors.Is(err, service.ErrAccountDisabled):
			response.Unauthorized(c, "Hesabınız devre dışı bırakılmış. Lütfen yönetici ile iletişime geçin.")
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("login failed")
			response.InternalError(c, "Giriş işlemi başarısız oldu")
		}
		return
	}

	response.Success(c, result)
}

// Me handles GET /auth/me. It validates the token itself so a deactivated
// account fails here even if the token is otherwise valid.
func (h *AuthHandler) Me(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c, "Geçersiz veya süresi dolmuş token")
		return
	}

	me, err := h.auth.Me(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountDisabled):
			response.Unauthorized(c, "Hesabınız devre dışı bırakılmış.")
		default:
			response.Unauthorized(c, "Geçersiz veya süresi dolmuş token")
		}
		return
	}

	response.Success(c, me)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
