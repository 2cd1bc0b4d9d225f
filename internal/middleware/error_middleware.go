package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/logger"
)

// Templates rendered by HandlePageError.
const (
	NotFoundTemplate    = "404.html"
	ServerErrorTemplate = "500.html"
)

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := apiError(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func apiError(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)
	message := func(fallback string) string {
		if hasCustom && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}
	withDetails := func(d *dto.ErrorDetail) *dto.ErrorDetail {
		if hasCustom && custom.Details != nil {
			d = d.WithDetails(custom.Details)
			if field, ok := custom.Details["field"].(string); ok {
				d = d.WithField(field)
			}
		}
		return d
	}

	if _, ok := apperrors.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity, dto.HandleValidationError(err)
	}

	switch {
	case err == nil:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found"))
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity, withDetails(dto.NewErrorDetail(dto.ErrorCodeReferenceNotFound, message("Referenced resource does not exist")))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, withDetails(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists")))
	case errors.Is(err, apperrors.ErrSlugUnavailable), errors.Is(err, apperrors.ErrSlugConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Could not allocate a unique slug, try again").WithField("slug")
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Bad request"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandlePageError renders the HTML error page for err. Missing records give
// the 404 page, anything else is logged and gives the generic 500 page.
func HandlePageError(c *gin.Context, err error) {
	if err != nil && errors.Is(err, apperrors.ErrResourceNotFound) {
		NotFoundPage(c)
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Page rendering failed")
	c.HTML(http.StatusInternalServerError, ServerErrorTemplate, gin.H{"Title": "Server Error"})
	c.Abort()
}

// NotFoundPage renders the 404 page. It also serves as the router's NoRoute
// handler, answering JSON under /api/.
func NotFoundPage(c *gin.Context) {
	if isAPIRequest(c) {
		HandleAPIError(c, apperrors.NewResourceNotFoundError("Route not found"))
		return
	}
	c.HTML(http.StatusNotFound, NotFoundTemplate, gin.H{"Title": "Page Not Found"})
	c.Abort()
}
