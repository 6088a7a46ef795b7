package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/event"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

const orderSort = "order_time desc"

type OrderStore interface {
	FindByID(ctx context.Context, id uint) (models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Reschedule(ctx context.Context, o models.Order) error
	UpdateState(ctx context.Context, id uint, t models.Transition) error
	Delete(ctx context.Context, id uint) (int64, error)
	PageByUser(ctx context.Context, userID string, req orm.PageRequest) (orm.Page[models.Order], error)
	PageByState(ctx context.Context, state models.State, req orm.PageRequest) (orm.Page[models.Order], error)
	FindByState(ctx context.Context, state models.State) ([]models.Order, error)
	FindByVenueBetween(ctx context.Context, venueID uint, from, to time.Time) ([]models.Order, error)
}

// VenueLookup is the part of venue storage orders need.
type VenueLookup interface {
	FindByName(ctx context.Context, name string) (models.Venue, error)
	NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}

// Booking is what a customer submits to place or reschedule an order.
// StartTime is "15:04" or "2006-01-02 15:04".
type Booking struct {
	VenueName string
	Date      string
	StartTime string
	Hours     int
}

// VenueDay is a venue with its live orders on one date.
type VenueDay struct {
	Venue  models.Venue   `json:"venue"`
	Orders []models.Order `json:"orders"`
}

type OrderService struct {
	orders OrderStore
	venues VenueLookup
	now    func() time.Time
	loc    *time.Location
}

func NewOrderService(orders OrderStore, venues VenueLookup) *OrderService {
	return &OrderService{orders: orders, venues: venues, now: time.Now, loc: time.Local}
}

// Place books b for userID. The order starts Pending with
// total = hours × venue price.
func (s *OrderService) Place(ctx context.Context, userID string, b Booking) (models.Order, error) {
	o, err := s.book(ctx, b)
	if err != nil {
		return models.Order{}, err
	}
	o.UserID = userID
	o.State = models.StatePending
	if err := s.orders.Create(ctx, &o); err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	logger.WithCtx(ctx).Info("order placed", "order_id", o.OrderID, "user_id", userID, "venue_id", o.VenueID)
	return o, nil
}

// Reschedule rebooks userID's order id with b and sends it back to review.
func (s *OrderService) Reschedule(ctx context.Context, userID string, id uint, b Booking) error {
	if _, err := s.GetOwned(ctx, userID, id); err != nil {
		return err
	}
	o, err := s.book(ctx, b)
	if err != nil {
		return err
	}
	o.OrderID = id
	if err := transition(s.orders.Reschedule(ctx, o), "order", id); err != nil {
		return err
	}
	event.Fire(ctx, event.Transitioned, event.Transition{Entity: "order", ID: id, Name: models.Resubmit.Name, To: models.Resubmit.To.String()})
	return nil
}

func (s *OrderService) book(ctx context.Context, b Booking) (models.Order, error) {
	name := strings.TrimSpace(b.VenueName)
	if name == "" {
		return models.Order{}, invalid("venueName is required")
	}
	if b.Hours < 1 {
		return models.Order{}, invalid("hours must be at least 1, got %d", b.Hours)
	}
	start, err := models.ParseStart(b.Date, b.StartTime, s.loc)
	if err != nil {
		return models.Order{}, invalid("%v", err)
	}
	v, err := s.venues.FindByName(ctx, name)
	if err != nil {
		return models.Order{}, lookup(err, "venue", name)
	}
	return models.Order{
		VenueID:   v.VenueID,
		OrderTime: s.now(),
		StartTime: start,
		Hours:     b.Hours,
		Total:     b.Hours * v.Price,
	}, nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (models.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	return o, lookup(err, "order", id)
}

// GetOwned loads order id and fails with ErrForbidden unless userID owns it.
func (s *OrderService) GetOwned(ctx context.Context, userID string, id uint) (models.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if o.UserID != userID {
		return models.Order{}, fmt.Errorf("order %d of %q: %w", id, userID, ErrForbidden)
	}
	return o, nil
}

// Finish closes userID's approved order id.
func (s *OrderService) Finish(ctx context.Context, userID string, id uint) error {
	if _, err := s.GetOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.apply(ctx, id, models.Finish)
}

// DeleteOwned removes userID's order id.
func (s *OrderService) DeleteOwned(ctx context.Context, userID string, id uint) error {
	if _, err := s.GetOwned(ctx, userID, id); err != nil {
		return err
	}
	n, err := s.orders.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *OrderService) Confirm(ctx context.Context, id uint) error {
	return s.apply(ctx, id, models.Confirm)
}

func (s *OrderService) Reject(ctx context.Context, id uint) error {
	return s.apply(ctx, id, models.Reject)
}

func (s *OrderService) apply(ctx context.Context, id uint, t models.Transition) error {
	if err := transition(s.orders.UpdateState(ctx, id, t), "order", id); err != nil {
		return err
	}
	event.Fire(ctx, event.Transitioned, event.Transition{Entity: "order", ID: id, Name: t.Name, To: t.To.String()})
	logger.WithCtx(ctx).Info("order transition", "order_id", id, "transition", t.Name, "to", t.To.String())
	return nil
}

// UserOrders pages through userID's orders, newest first.
func (s *OrderService) UserOrders(ctx context.Context, userID string, page int) (orm.Page[models.OrderVo], error) {
	req, err := pageRequest(page, UserPageSize, orderSort)
	if err != nil {
		return orm.Page[models.OrderVo]{}, err
	}
	p, err := s.orders.PageByUser(ctx, userID, req)
	if err != nil {
		return orm.Page[models.OrderVo]{}, fmt.Errorf("page orders of %q: %w", userID, err)
	}
	return s.project(ctx, p)
}

// Pending pages through orders awaiting review, newest first.
func (s *OrderService) Pending(ctx context.Context, page int) (orm.Page[models.OrderVo], error) {
	req, err := pageRequest(page, AdminPageSize, orderSort)
	if err != nil {
		return orm.Page[models.OrderVo]{}, err
	}
	p, err := s.orders.PageByState(ctx, models.StatePending, req)
	if err != nil {
		return orm.Page[models.OrderVo]{}, fmt.Errorf("page pending orders: %w", err)
	}
	return s.project(ctx, p)
}

// Approved lists every approved order, newest first.
func (s *OrderService) Approved(ctx context.Context) ([]models.OrderVo, error) {
	orders, err := s.orders.FindByState(ctx, models.StateApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved orders: %w", err)
	}
	names, err := s.venues.NamesByIDs(ctx, models.VenueIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("venue names: %w", err)
	}
	return models.ToOrderVos(orders, names), nil
}

// VenueDay returns venueName with its non-rejected orders starting on date
// ("2006-01-02").
func (s *OrderService) VenueDay(ctx context.Context, venueName, date string) (VenueDay, error) {
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), s.loc)
	if err != nil {
		return VenueDay{}, invalid("date %q: %v", date, err)
	}
	v, err := s.venues.FindByName(ctx, strings.TrimSpace(venueName))
	if err != nil {
		return VenueDay{}, lookup(err, "venue", venueName)
	}
	orders, err := s.orders.FindByVenueBetween(ctx, v.VenueID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return VenueDay{}, fmt.Errorf("orders of venue %d on %s: %w", v.VenueID, date, err)
	}
	return VenueDay{Venue: v, Orders: orders}, nil
}

func (s *OrderService) project(ctx context.Context, p orm.Page[models.Order]) (orm.Page[models.OrderVo], error) {
	names, err := s.venues.NamesByIDs(ctx, models.VenueIDs(p.Items))
	if err != nil {
		return orm.Page[models.OrderVo]{}, fmt.Errorf("venue names: %w", err)
	}
	return orm.Map(p, func(orders []models.Order) []models.OrderVo {
		return models.ToOrderVos(orders, names)
	}), nil
}
