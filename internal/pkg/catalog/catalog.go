// Package catalog implements the title search and fixed-size paging used by
// the library listing.
package catalog

import (
	"strings"

	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// PageSize is the number of items shown per catalog page.
const PageSize = 9

// Page is one window of a filtered sequence.
type Page[T any] struct {
	Items       []T
	Number      int
	TotalPages  int
	TotalItems  int
	PageSize    int
	HasNext     bool
	HasPrevious bool
}

// NextPage returns the following page number, or the current one on the last page.
func (p Page[T]) NextPage() int {
	if p.HasNext {
		return p.Number + 1
	}
	return p.Number
}

// PreviousPage returns the preceding page number, or the current one on the first page.
func (p Page[T]) PreviousPage() int {
	if p.HasPrevious {
		return p.Number - 1
	}
	return p.Number
}

// PageNumbers lists 1..TotalPages for pager links.
func (p Page[T]) PageNumbers() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// Filter keeps the items whose title contains query, compared case
// insensitively. The input order is preserved. An empty or blank query keeps
// everything.
func Filter[T any](items []T, query string, title func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if q == "" || strings.Contains(strings.ToLower(title(item)), q) {
			out = append(out, item)
		}
	}
	return out
}

// Paginate cuts page number page out of items. Out of range requests resolve
// to the nearest valid page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = PageSize
	}
	number, totalPages := helpers.ClampPage(page, len(items), size)
	start, end := helpers.CalculateSliceIndices(number, size, len(items))

	return Page[T]{
		Items:       items[start:end],
		Number:      number,
		TotalPages:  totalPages,
		TotalItems:  len(items),
		PageSize:    size,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
