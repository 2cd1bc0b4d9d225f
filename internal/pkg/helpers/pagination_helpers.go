package helpers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// ClampPage resolves a requested 1-based page against a collection of
// totalItems split into pages of size. Requests below the first page resolve
// to page 1 and requests past the last page resolve to the last page. An empty
// collection still has one (empty) page.
func ClampPage(requested, totalItems, size int) (page, totalPages int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages = (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	page = requested
	if page < 1 {
		page = DefaultPage
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}
	if page < 1 {
		page = DefaultPage
	}
	offset = uint64((page - 1) * limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO for an already
// clamped page.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	current, totalPages := ClampPage(page, int(totalItems), size)

	return dto.PaginationInfo{
		CurrentPage: current,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
		HasNext:     current < totalPages,
		HasPrevious: current > 1,
	}
}

// ParsePage reads the "page" query parameter. Anything that is not a positive
// integer yields the first page. Positive numbers too large for an int yield
// math.MaxInt, which ClampPage turns into the last page.
func ParsePage(c *gin.Context) int {
	return parsePage(c.DefaultQuery("page", "1"))
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange && !strings.HasPrefix(raw, "-") {
			return math.MaxInt
		}
		return DefaultPage
	}
	if page < 1 {
		return DefaultPage
	}
	return page
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page = ParsePage(c)

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

// CalculateSliceIndices returns the [start, end) bounds of a page inside a
// slice of totalItems elements.
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	start = (page - 1) * size
	if start > totalItems {
		start = totalItems
	}
	end = start + size
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
