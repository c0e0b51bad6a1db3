// Package pagination holds the page/size contract shared by list endpoints.
package pagination

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100
)

var (
	ErrInvalidPage = errors.New("page must be an integer greater than or equal to 1")
	ErrInvalidSize = errors.New("size must be an integer between 1 and the maximum page size")
)

// Params describes the slice of a result set the caller wants.
type Params struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limits bounds page sizes accepted from callers.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultLimits returns the stock page size limits.
func DefaultLimits() Limits {
	return Limits{DefaultSize: DefaultSize, MaxSize: MaxSize}
}

// Parse reads page and size from query parameters, applying defaults for
// absent values and rejecting out-of-range ones.
func (l Limits) Parse(query url.Values) (Params, error) {
	params := Params{Page: DefaultPage, Size: l.DefaultSize}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > l.MaxSize {
			return Params{}, fmt.Errorf("%w (max %d)", ErrInvalidSize, l.MaxSize)
		}
		params.Size = size
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, ErrInvalidPage
		}
		// Offset must stay representable
		if page-1 > math.MaxInt/params.Size {
			return Params{}, ErrInvalidPage
		}
		params.Page = page
	}

	return params, nil
}

// Page is a bounded slice of a larger result set.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// New assembles a page from the items of one slice and the total row count.
func New[T any](items []T, total int, params Params) Page[T] {
	if items == nil {
		items = []T{}
	}

	pages := 0
	if params.Size > 0 {
		pages = (total + params.Size - 1) / params.Size
	}

	return Page[T]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: pages,
	}
}
