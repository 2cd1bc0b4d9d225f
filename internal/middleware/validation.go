package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
)

// BindJSON decodes the request body into obj. Malformed bodies are answered
// with 400 and false is returned. Field rules live in the services, but binding
// tags, when present, report their fields the same way.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		detail := dto.HandleValidationError(err)
		detail.Message = "Invalid request format"
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}
	return true
}
