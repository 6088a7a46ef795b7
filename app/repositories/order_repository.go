package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).First(&o, id).Error
	return o, err
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// Reschedule rewrites the booking fields of order o.OrderID and puts it back
// into review, unless its state forbids resubmission.
func (r *OrderRepository) Reschedule(ctx context.Context, o models.Order) error {
	return applyTransition(ctx, r.db, &models.Order{}, "order_id", o.OrderID, models.Resubmit, map[string]interface{}{
		"venue_id":   o.VenueID,
		"order_time": o.OrderTime,
		"start_time": o.StartTime,
		"hours":      o.Hours,
		"total":      o.Total,
	})
}

// UpdateState applies t to order id.
func (r *OrderRepository) UpdateState(ctx context.Context, id uint, t models.Transition) error {
	return applyTransition(ctx, r.db, &models.Order{}, "order_id", id, t, nil)
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, id)
	return res.RowsAffected, res.Error
}

// PageByUser pages through userID's orders, newest first by req.Sort.
func (r *OrderRepository) PageByUser(ctx context.Context, userID string, req orm.PageRequest) (orm.Page[models.Order], error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)
	return orm.Paginate[models.Order](q, req)
}

func (r *OrderRepository) PageByState(ctx context.Context, state models.State, req orm.PageRequest) (orm.Page[models.Order], error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).Where("state = ?", int(state))
	return orm.Paginate[models.Order](q, req)
}

// FindByState lists every order in state, newest first.
func (r *OrderRepository) FindByState(ctx context.Context, state models.State) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Where("state = ?", int(state)).Order("order_time desc").Find(&orders).Error
	return orders, err
}

// FindByVenueBetween lists live (not rejected) orders of venueID starting
// in [from, to), earliest first.
func (r *OrderRepository) FindByVenueBetween(ctx context.Context, venueID uint, from, to time.Time) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND start_time >= ? AND start_time < ? AND state <> ?", venueID, from, to, int(models.StateRejected)).
		Order("start_time asc").
		Find(&orders).Error
	return orders, err
}
