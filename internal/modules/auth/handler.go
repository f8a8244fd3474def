package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenalyadmin/internal/pkg/response"
)

// Handler manages the sign-in lifecycle for dashboard staff.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/session", h.Session)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "login and password are required")
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		response.Upstream(c, err)
		return
	}

	response.Success(c, http.StatusOK, SessionResponse{
		FullName: sess.FullName,
		Email:    sess.Email,
		Role:     sess.Role,
	})
}

func (h *Handler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, SessionResponse{
		FullName: c.GetString(AdminNameKey),
		Email:    c.GetString(AdminEmailKey),
		Role:     c.GetString(AdminRoleKey),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "could not clear session")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "signed out"})
}
