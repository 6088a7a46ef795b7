package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) FindByID(ctx context.Context, id uint) (models.News, error) {
	var n models.News
	err := r.db.WithContext(ctx).First(&n, id).Error
	return n, err
}

func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NewsRepository) Update(ctx context.Context, n *models.News) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NewsRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.News{}, id)
	return res.RowsAffected, res.Error
}

func (r *NewsRepository) Page(ctx context.Context, req orm.PageRequest) (orm.Page[models.News], error) {
	return orm.Paginate[models.News](r.db.WithContext(ctx).Model(&models.News{}), req)
}
