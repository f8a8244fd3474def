package users

import (
	"errors"
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
	usersGroup := protected.Group("/users")
	{
		usersGroup.GET("", h.List)
		usersGroup.GET("/export", h.Export)
		usersGroup.PATCH("/:id/suspend", h.Suspend)
		usersGroup.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	filters := filtersFromQuery(
		c.Query("search"),
		c.Query("subscription"),
		c.Query("userType"),
		c.Query("status"),
	)
	page := pageFromQuery(c.Query("page"), c.Query("limit"))

	list, err := h.service.List(c.Request.Context(), auth.Token(c), filters, page)
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Suspend(c *gin.Context) {
	var req SuspendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	err := h.service.Suspend(c.Request.Context(), auth.Token(c), c.Param("id"), req.Suspend, req.Reason)
	if err != nil {
		if errors.Is(err, ErrReasonRequired) {
			response.Error(c, http.StatusBadRequest, "REASON_REQUIRED", err.Error())
			return
		}
		response.Upstream(c, err)
		return
	}

	msg := "user unsuspended"
	if req.Suspend {
		msg = "user suspended"
	}
	response.Success(c, http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "email and confirmEmail are required")
		return
	}

	err := h.service.Delete(c.Request.Context(), auth.Token(c), c.Param("id"), req.Email, req.ConfirmEmail)
	if err != nil {
		if errors.Is(err, ErrEmailMismatch) {
			response.Error(c, http.StatusBadRequest, "EMAIL_MISMATCH", err.Error())
			return
		}
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted"})
}

func (h *Handler) Export(c *gin.Context) {
	filters := filtersFromQuery(
		c.Query("search"),
		c.Query("subscription"),
		c.Query("userType"),
		c.Query("status"),
	)

	data, err := h.service.ExportCSV(c.Request.Context(), auth.Token(c), filters)
	if err != nil {
		response.Upstream(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="users-export.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
