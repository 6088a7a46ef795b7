package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/collection"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUserID looks a user up by login name.
func (r *UserRepository) FindByUserID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	return user, err
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, err
}

// FindByUserIDs returns the users that exist among ids, keyed by UserID.
func (r *UserRepository) FindByUserIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	if len(ids) == 0 {
		return map[string]models.User{}, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return collection.KeyBy(users, func(u models.User) string { return u.UserID }), nil
}

func (r *UserRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update saves every column of user by primary key.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Rename saves user, whose UserID may differ from oldUserID, and moves the
// user's orders and messages to the new ID.
func (r *UserRepository) Rename(ctx context.Context, oldUserID string, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if oldUserID == user.UserID {
			return nil
		}
		if err := tx.Model(&models.Order{}).Where("user_id = ?", oldUserID).Update("user_id", user.UserID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Message{}).Where("user_id = ?", oldUserID).Update("user_id", user.UserID).Error
	})
}

// Delete removes the user with id together with their orders and messages,
// and reports how many user rows went.
func (r *UserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Select("id", "user_id").First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("user_id = ?", u.UserID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", u.UserID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		n = res.RowsAffected
		return res.Error
	})
	return n, err
}

// PageCustomers pages through non-admin users.
func (r *UserRepository) PageCustomers(ctx context.Context, req orm.PageRequest) (orm.Page[models.User], error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("is_admin = ?", 0)
	return orm.Paginate[models.User](q, req)
}
