// Package controllers handles HTTP request handling: the public HTML pages and
// the admin JSON API.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// render executes a page template. data gets Title and Active added.
func render(c *gin.Context, status int, name, title, active string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Active"] = active
	c.HTML(status, name, data)
}

// pageID reads an integer path parameter of a page. Anything else is a 404.
func pageID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.NotFoundPage(c)
		return 0, false
	}
	return id, true
}

// apiID reads an integer path parameter of an API route.
func apiID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid "+name+": must be a positive integer"))
		return 0, false
	}
	return id, true
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.NewAPIResponse(data))
}

// paginated writes one page of a listing with its pagination info.
func paginated(c *gin.Context, data interface{}, total int64, page, size int) {
	info := helpers.NewPaginationInfo(total, page, size)
	resp := dto.NewAPIResponse(data)
	resp.Pagination = &info
	c.JSON(http.StatusOK, resp)
}

func deleted(c *gin.Context, what string) {
	respond(c, http.StatusOK, dto.SuccessResponse{Message: what + " deleted successfully"})
}

// formErrors extracts the field messages of a failed form submission. ok is
// false for any other kind of error.
func formErrors(err error) (map[string]string, bool) {
	ve, ok := apperrors.AsValidationError(err)
	if !ok {
		return nil, false
	}
	return ve.Fields, true
}
