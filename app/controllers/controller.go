// Package controllers binds HTTP parameters, resolves the session principal
// and picks the view, JSON body, boolean or redirect for each endpoint.
package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type Venues interface {
	Get(ctx context.Context, id uint) (models.Venue, error)
	Page(ctx context.Context, page, size int) (orm.Page[models.Venue], error)
	NameAvailable(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, v *models.Venue) error
	Update(ctx context.Context, v *models.Venue) error
	Delete(ctx context.Context, id uint) error
}

type News interface {
	Get(ctx context.Context, id uint) (models.News, error)
	Page(ctx context.Context, page, size int) (orm.Page[models.News], error)
	Create(ctx context.Context, title, content string) (models.News, error)
	Update(ctx context.Context, id uint, title, content string) error
	Delete(ctx context.Context, id uint) error
}

type Orders interface {
	Place(ctx context.Context, userID string, b services.Booking) (models.Order, error)
	Reschedule(ctx context.Context, userID string, id uint, b services.Booking) error
	GetOwned(ctx context.Context, userID string, id uint) (models.Order, error)
	Finish(ctx context.Context, userID string, id uint) error
	DeleteOwned(ctx context.Context, userID string, id uint) error
	Confirm(ctx context.Context, id uint) error
	Reject(ctx context.Context, id uint) error
	UserOrders(ctx context.Context, userID string, page int) (orm.Page[models.OrderVo], error)
	Pending(ctx context.Context, page int) (orm.Page[models.OrderVo], error)
	Approved(ctx context.Context) ([]models.OrderVo, error)
	VenueDay(ctx context.Context, venueName, date string) (services.VenueDay, error)
}

type Messages interface {
	Send(ctx context.Context, userID, content string) (models.Message, error)
	Modify(ctx context.Context, userID string, id uint, content string) error
	DeleteOwned(ctx context.Context, userID string, id uint) error
	Delete(ctx context.Context, id uint) error
	Confirm(ctx context.Context, id uint) error
	Reject(ctx context.Context, id uint) error
	Approved(ctx context.Context, page int) (orm.Page[models.MessageVo], error)
	Pending(ctx context.Context, page int) (orm.Page[models.MessageVo], error)
	ByUser(ctx context.Context, userID string, page int) (orm.Page[models.MessageVo], error)
}

type Users interface {
	Login(ctx context.Context, userID, password string) (models.User, error)
	Register(ctx context.Context, a services.Account) (models.User, error)
	Create(ctx context.Context, a services.Account) (models.User, error)
	Get(ctx context.Context, userID string) (models.User, error)
	GetByID(ctx context.Context, id uint) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, a services.Account) (models.User, error)
	CheckPassword(ctx context.Context, userID, password string) (bool, error)
	Page(ctx context.Context, page, size int) (orm.Page[models.User], error)
	Modify(ctx context.Context, oldUserID string, a services.Account) (models.User, error)
	Delete(ctx context.Context, id uint) error
	UserIDAvailable(ctx context.Context, userID string) (bool, error)
}

// Status maps a service error to its HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, orm.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrLogin), errors.Is(err, services.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail answers err with its mapped status. Server errors are logged and
// their detail withheld.
func fail(c *ctx.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logger.WithCtx(c.Context()).Error("request failed", "path", c.R.URL.Path, "error", err)
		c.Error(status, "Internal server error")
		return
	}
	c.Error(status, err.Error())
}

// badRequest answers 400 for a malformed parameter.
func badRequest(c *ctx.Context, err error) {
	c.Error(http.StatusBadRequest, err.Error())
}

// principal returns the caller for role. Guarded routes always have one;
// a miss answers 401.
func principal(c *ctx.Context, role string) (auth.Principal, bool) {
	p, err := c.Principal(role)
	if err != nil {
		fail(c, err)
		return auth.Principal{}, false
	}
	return p, true
}
