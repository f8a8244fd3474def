package verification

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
	group := protected.Group("/verifications")
	{
		group.GET("", h.List)
		group.GET("/export", h.Export)
		group.PATCH("/:id/verify", h.Approve)
		group.PATCH("/:id/reject", h.Reject)
	}
}

func (h *Handler) List(c *gin.Context) {
	criteria := criteriaFromQuery(
		c.Query("search"),
		c.Query("type"),
		c.Query("status"),
		c.Query("tab"),
		c.Query("date"),
	)

	list, err := h.service.List(c.Request.Context(), auth.Token(c), criteria)
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Approve(c *gin.Context) {
	if err := h.service.Approve(c.Request.Context(), auth.Token(c), c.Param("id")); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "verification approved"})
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	err := h.service.Reject(c.Request.Context(), auth.Token(c), c.Param("id"), req.Reason)
	if err != nil {
		if errors.Is(err, ErrReasonRequired) {
			response.Error(c, http.StatusBadRequest, "REASON_REQUIRED", err.Error())
			return
		}
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "verification rejected"})
}

func (h *Handler) Export(c *gin.Context) {
	criteria := criteriaFromQuery(
		c.Query("search"),
		c.Query("type"),
		c.Query("status"),
		c.Query("tab"),
		c.Query("date"),
	)

	data, err := h.service.ExportCSV(c.Request.Context(), auth.Token(c), criteria)
	if err != nil {
		response.Upstream(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="verifications-export.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
