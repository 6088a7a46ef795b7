package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) FindByID(ctx context.Context, id uint) (models.Venue, error) {
	var v models.Venue
	err := r.db.WithContext(ctx).First(&v, id).Error
	return v, err
}

func (r *VenueRepository) FindByName(ctx context.Context, name string) (models.Venue, error) {
	var v models.Venue
	err := r.db.WithContext(ctx).Where("venue_name = ?", name).First(&v).Error
	return v, err
}

// NamesByIDs maps each existing venue ID among ids to its name.
func (r *VenueRepository) NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Select("venue_id", "venue_name").Where("venue_id IN ?", ids).Find(&venues).Error; err != nil {
		return nil, err
	}
	for _, v := range venues {
		out[v.VenueID] = v.VenueName
	}
	return out, nil
}

// CountByName counts venues called name, ignoring excludeID (0 for none).
func (r *VenueRepository) CountByName(ctx context.Context, name string, excludeID uint) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&models.Venue{}).Where("venue_name = ?", name)
	if excludeID != 0 {
		q = q.Where("venue_id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n, err
}

func (r *VenueRepository) Create(ctx context.Context, v *models.Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VenueRepository) Update(ctx context.Context, v *models.Venue) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VenueRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Venue{}, id)
	return res.RowsAffected, res.Error
}

func (r *VenueRepository) Page(ctx context.Context, req orm.PageRequest) (orm.Page[models.Venue], error) {
	return orm.Paginate[models.Venue](r.db.WithContext(ctx).Model(&models.Venue{}), req)
}
