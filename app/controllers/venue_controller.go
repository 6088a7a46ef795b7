package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

// AddVenueFailed is flashed when a venue cannot be created.
const AddVenueFailed = "添加失败！"

type VenueController struct {
	venues Venues
}

func NewVenueController(venues Venues) *VenueController {
	return &VenueController{venues: venues}
}

type venueForm struct {
	VenueID     uint   `form:"venueID"`
	VenueName   string `form:"venueName"   validate:"required,max=255"`
	Description string `form:"description"`
	Price       int    `form:"price"       validate:"nullable,gte=0"`
	Picture     string `form:"picture"     validate:"nullable,max=255"`
	Address     string `form:"address"     validate:"nullable,max=255"`
	OpenTime    string `form:"open_time"   validate:"nullable,clock"`
	CloseTime   string `form:"close_time"  validate:"nullable,clock"`
}

func (f venueForm) venue() models.Venue {
	return models.Venue{
		VenueID:     f.VenueID,
		VenueName:   f.VenueName,
		Description: f.Description,
		Price:       f.Price,
		Picture:     f.Picture,
		Address:     f.Address,
		OpenTime:    f.OpenTime,
		CloseTime:   f.CloseTime,
	}
}

// Show renders one venue.
func (vc *VenueController) Show(c *ctx.Context) {
	id, err := c.Uint("venueID")
	if err != nil {
		badRequest(c, err)
		return
	}
	v, err := vc.venues.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("venue", response.Model{"venue": v})
}

// List renders the first page of venues and the page count.
func (vc *VenueController) List(c *ctx.Context) {
	p, err := vc.venues.Page(c.Context(), 1, services.UserPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("venue_list", response.Model{"venue_list": p.Items, "total": p.TotalPages()})
}

// PageJSON answers one page with its paging data.
func (vc *VenueController) PageJSON(c *ctx.Context) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := vc.venues.Page(c.Context(), page, services.UserPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (vc *VenueController) Manage(c *ctx.Context) {
	p, err := vc.venues.Page(c.Context(), 1, services.AdminPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/venue_manage", response.Model{"total": p.TotalPages()})
}

func (vc *VenueController) Edit(c *ctx.Context) {
	id, err := c.Uint("venueID")
	if err != nil {
		badRequest(c, err)
		return
	}
	v, err := vc.venues.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/venue_edit", response.Model{"venue": v})
}

// AddForm renders the creation form with the last failure, if any.
func (vc *VenueController) AddForm(c *ctx.Context) {
	msg := c.Session().FlashString("message")
	c.SaveSession()
	c.View("admin/venue_add", response.Model{"message": msg})
}

func (vc *VenueController) AdminList(c *ctx.Context) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := vc.venues.Page(c.Context(), page, services.AdminPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Items)
}

// Add creates a venue. Bad input or a taken name go back to the form with
// a flash message.
func (vc *VenueController) Add(c *ctx.Context) {
	var f venueForm
	if !c.BindForm(&f) {
		return
	}
	v := f.venue()
	v.VenueID = 0
	if err := vc.venues.Create(c.Context(), &v); err != nil {
		if Status(err) >= 500 {
			fail(c, err)
			return
		}
		logger.WithCtx(c.Context()).Info("venue not added", "name", f.VenueName, "error", err)
		c.Session().Flash("message", AddVenueFailed)
		c.SaveSession()
		c.Redirect("/admin/venue_add")
		return
	}
	c.Redirect("/admin/venue_manage")
}

func (vc *VenueController) Modify(c *ctx.Context) {
	var f venueForm
	if !c.BindForm(&f) {
		return
	}
	if f.VenueID == 0 {
		badRequest(c, errors.New("venueID is required"))
		return
	}
	v := f.venue()
	if err := vc.venues.Update(c.Context(), &v); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/admin/venue_manage")
}

func (vc *VenueController) Delete(c *ctx.Context) {
	id, err := c.Uint("venueID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := vc.venues.Delete(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}

// CheckName answers true when venueName is free.
func (vc *VenueController) CheckName(c *ctx.Context) {
	ok, err := vc.venues.NameAvailable(c.Context(), c.PostForm("venueName"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Bool(ok)
}
