package ads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenalyadmin/internal/modules/auth"
	"tenalyadmin/internal/pkg/response"
)

// Handler exposes the moderation queue over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	adsGroup := protected.Group("/ads")
	{
		adsGroup.GET("", h.List)
		adsGroup.GET("/export", h.Export)
		adsGroup.GET("/:id", h.Detail)
		adsGroup.PATCH("/:id/approve", h.Approve)
		adsGroup.PUT("/:id/reject", h.Reject)
	}

	// drill-in from the user profile page
	protected.GET("/users/:id/ads", h.UserAds)
}

func (h *Handler) UserAds(c *gin.Context) {
	list, err := h.service.ListForUser(c.Request.Context(), auth.Token(c), c.Param("id"))
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ads": list, "total": len(list)})
}

func (h *Handler) List(c *gin.Context) {
	criteria := criteriaFromQuery(
		c.Query("status"),
		c.Query("category"),
		c.Query("search"),
		c.Query("dateRange"),
	)

	list, err := h.service.List(c.Request.Context(), auth.Token(c), criteria)
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Detail(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), auth.Token(c), c.Param("id"))
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Approve(c *gin.Context) {
	if err := h.service.Approve(c.Request.Context(), auth.Token(c), c.Param("id")); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "ad approved"})
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
	response.Success(c, http.StatusOK, gin.H{"message": "ad rejected"})
}

func (h *Handler) Export(c *gin.Context) {
	criteria := criteriaFromQuery(
		c.Query("status"),
		c.Query("category"),
		c.Query("search"),
		c.Query("dateRange"),
	)

	data, err := h.service.ExportCSV(c.Request.Context(), auth.Token(c), criteria)
	if err != nil {
		response.Upstream(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ads-export.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
