package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenalyadmin/internal/tenaly"
)

// Upstream maps a Tenaly client failure onto the gateway envelope. Upstream
// rejections keep their message; transport failures collapse to 502 so the
// dashboard can show a transient notice and keep its last-known-good list.
func Upstream(c *gin.Context, err error) {
	apiErr, ok := tenaly.AsAPIError(err)
	if !ok {
		Error(c, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Tenaly API unreachable")
		return
	}

	switch {
	case apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden:
		Error(c, http.StatusForbidden, "ACCESS_DENIED", "Access denied: Admin only")
	case apiErr.Status == http.StatusNotFound:
		Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case apiErr.Status >= http.StatusInternalServerError:
		Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", apiErr.Message)
	default:
		Error(c, apiErr.Status, "UPSTREAM_REJECTED", apiErr.Message)
	}
}
