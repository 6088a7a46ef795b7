package controllers

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

type OrderController struct {
	orders Orders
	venues Venues
}

func NewOrderController(orders Orders, venues Venues) *OrderController {
	return &OrderController{orders: orders, venues: venues}
}

type bookingForm struct {
	OrderID   uint   `form:"orderID"`
	VenueName string `form:"venueName" validate:"required,max=255"`
	Date      string `form:"date"      validate:"required,date"`
	StartTime string `form:"startTime" validate:"required,clock"`
	Hours     int    `form:"hours"     validate:"required,gte=1,lte=24"`
}

func (f bookingForm) booking() services.Booking {
	return services.Booking{VenueName: f.VenueName, Date: f.Date, StartTime: f.StartTime, Hours: f.Hours}
}

// Manage renders the caller's order page with their page count.
func (oc *OrderController) Manage(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	page, err := oc.orders.UserOrders(c.Context(), p.UserID, 1)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("order_manage", response.Model{"total": page.TotalPages()})
}

// Place renders the booking form for a venue. Unknown venues go back to
// the venue list.
func (oc *OrderController) Place(c *ctx.Context) {
	id, err := c.Uint("venueID")
	if err != nil {
		c.Redirect("/venue_list")
		return
	}
	v, err := oc.venues.Get(c.Context(), id)
	if err != nil {
		if Status(err) == http.StatusNotFound {
			c.Redirect("/venue_list")
			return
		}
		fail(c, err)
		return
	}
	c.View("order_place", response.Model{"venue": v})
}

// UserList answers one page of the caller's orders.
func (oc *OrderController) UserList(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	orders, err := oc.orders.UserOrders(c.Context(), p.UserID, page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders.Items)
}

func (oc *OrderController) Add(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	var f bookingForm
	if !c.BindForm(&f) {
		return
	}
	if _, err := oc.orders.Place(c.Context(), p.UserID, f.booking()); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/order_manage")
}

func (oc *OrderController) Finish(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	id, err := c.Uint("orderID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := oc.orders.Finish(c.Context(), p.UserID, id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}

// EditForm renders the caller's order with its venue.
func (oc *OrderController) EditForm(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	id, err := c.Uint("orderID")
	if err != nil {
		badRequest(c, err)
		return
	}
	o, err := oc.orders.GetOwned(c.Context(), p.UserID, id)
	if err != nil {
		fail(c, err)
		return
	}
	v, err := oc.venues.Get(c.Context(), o.VenueID)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("order_edit", response.Model{"order": o, "venue": v})
}

func (oc *OrderController) Modify(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	var f bookingForm
	if !c.BindForm(&f) {
		return
	}
	if f.OrderID == 0 {
		c.Error(http.StatusBadRequest, "orderID is required")
		return
	}
	if err := oc.orders.Reschedule(c.Context(), p.UserID, f.OrderID, f.booking()); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/order_manage")
}

func (oc *OrderController) Delete(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	id, err := c.Uint("orderID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := oc.orders.DeleteOwned(c.Context(), p.UserID, id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}

// VenueDay answers a venue and its live orders on a date.
func (oc *OrderController) VenueDay(c *ctx.Context) {
	day, err := oc.orders.VenueDay(c.Context(), c.Query("venueName"), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// Reservations renders approved orders and the number of pending pages.
func (oc *OrderController) Reservations(c *ctx.Context) {
	approved, err := oc.orders.Approved(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	pending, err := oc.orders.Pending(c.Context(), 1)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/reservation_manage", response.Model{"order_list": approved, "total": pending.TotalPages()})
}

func (oc *OrderController) PendingList(c *ctx.Context) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := oc.orders.Pending(c.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Items)
}

func (oc *OrderController) Pass(c *ctx.Context) {
	oc.moderate(c, oc.orders.Confirm)
}

func (oc *OrderController) Reject(c *ctx.Context) {
	oc.moderate(c, oc.orders.Reject)
}

func (oc *OrderController) moderate(c *ctx.Context, apply func(context.Context, uint) error) {
	id, err := c.Uint("orderID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := apply(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}
