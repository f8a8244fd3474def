package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenalyadmin/internal/modules/auth"
	"tenalyadmin/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/stats/overview", h.Overview)
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), auth.Token(c))
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, overview)
}
