// Package services holds the business rules: existence checks, uniqueness,
// ownership and the moderation state machine. Storage is reached through
// the small interfaces declared next to each service.
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/repositories"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrBadCredentials    = errors.New("bad credentials")
)

const (
	// UserPageSize is the page size of customer-facing lists.
	UserPageSize = 5
	// AdminPageSize is the page size of admin console lists.
	AdminPageSize = 10
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// lookup maps a storage miss on what/id to ErrNotFound.
func lookup(err error, what string, id interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("load %s %v: %w", what, id, err)
}

// transition maps a storage transition failure on what/id.
func transition(err error, what string, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	case errors.Is(err, repositories.ErrStateConflict):
		return fmt.Errorf("%s %d: %w: %v", what, id, ErrInvalidTransition, err)
	default:
		return fmt.Errorf("update %s %d: %w", what, id, err)
	}
}

func pageRequest(page, size int, sort string) (orm.PageRequest, error) {
	req, err := orm.NewPageRequest(page, size, sort)
	if err != nil {
		return orm.PageRequest{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return req, nil
}
