package helpers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SortSpec is an explicit ordering request. Listing operations never rely on
// an implicit default order; callers pass the order they want.
type SortSpec struct {
	Field string
	Desc  bool
}

// Asc and Desc build sort specs.
func Asc(field string) SortSpec  { return SortSpec{Field: field} }
func Desc(field string) SortSpec { return SortSpec{Field: field, Desc: true} }

// String renders the sort in query-string form, "-date" for descending.
func (s SortSpec) String() string {
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}

// ParseSortSpec parses "field" or "-field". An empty string yields fallback.
func ParseSortSpec(raw string, fallback SortSpec) SortSpec {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return fallback
	}
	if strings.HasPrefix(raw, "-") {
		return SortSpec{Field: raw[1:], Desc: true}
	}
	return SortSpec{Field: raw}
}

// ParseSortParam reads the "sort" query parameter.
func ParseSortParam(c *gin.Context, fallback SortSpec) SortSpec {
	return ParseSortSpec(c.Query("sort"), fallback)
}

// OrderByClause maps a sort spec to a SQL ORDER BY fragment through a whitelist
// of field->column. Unknown fields fall back to fallback. The primary key is
// appended as a tie breaker so pagination is stable.
func OrderByClause(spec SortSpec, columns map[string]string, fallback SortSpec) string {
	column, ok := columns[spec.Field]
	if !ok {
		spec = fallback
		column, ok = columns[spec.Field]
		if !ok {
			column = "id"
		}
	}

	dir := "ASC"
	if spec.Desc {
		dir = "DESC"
	}
	if column == "id" {
		return "id " + dir
	}
	return column + " " + dir + ", id " + dir
}
