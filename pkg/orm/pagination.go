// Package orm holds the pagination contract shared by every list query.
//
// Pages are 1-based on the wire and become a row offset here:
//
//	req, err := orm.NewPageRequest(page, 10, "venue_id asc")
//	p, err := orm.Paginate[models.Venue](db.Model(&models.Venue{}), req)
package orm

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidPage is returned for a page below 1, a non-positive size, a page
// whose offset does not fit in an int, or a missing sort.
var ErrInvalidPage = errors.New("invalid page request")

// PageRequest is a validated page query.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

func NewPageRequest(page, size int, sort string) (PageRequest, error) {
	switch {
	case page < 1:
		return PageRequest{}, fmt.Errorf("%w: page %d is below 1", ErrInvalidPage, page)
	case size < 1:
		return PageRequest{}, fmt.Errorf("%w: size %d is below 1", ErrInvalidPage, size)
	case page-1 > math.MaxInt/size:
		return PageRequest{}, fmt.Errorf("%w: page %d is out of range", ErrInvalidPage, page)
	case strings.TrimSpace(sort) == "":
		return PageRequest{}, fmt.Errorf("%w: sort is required", ErrInvalidPage)
	}
	return PageRequest{Page: page, Size: size, Sort: sort}, nil
}

// Offset is the number of rows before this page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

// Page is one slice of a sorted result set.
type Page[T any] struct {
	Items      []T   `json:"content"`
	Offset     int   `json:"offset"`
	PageSize   int   `json:"size"`
	TotalCount int64 `json:"totalElements"`
}

// TotalPages is the number of pages needed for TotalCount rows.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// Map projects the items of p with fn, keeping order and paging data.
func Map[T, U any](p Page[T], fn func([]T) []U) Page[U] {
	return Page[U]{
		Items:      fn(p.Items),
		Offset:     p.Offset,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
	}
}

// Paginate counts the rows matched by q, then loads one page into a slice.
// q must already carry Model and any Where clauses.
func Paginate[T any](q *gorm.DB, req PageRequest) (Page[T], error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, fmt.Errorf("orm: count: %w", err)
	}

	items := make([]T, 0, req.Size)
	if int64(req.Offset()) < total {
		if err := q.Session(&gorm.Session{}).
			Order(req.Sort).
			Offset(req.Offset()).
			Limit(req.Size).
			Find(&items).Error; err != nil {
			return Page[T]{}, fmt.Errorf("orm: find page: %w", err)
		}
	}

	return Page[T]{
		Items:      items,
		Offset:     req.Offset(),
		PageSize:   req.Size,
		TotalCount: total,
	}, nil
}
