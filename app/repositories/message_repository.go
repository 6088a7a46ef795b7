package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) FindByID(ctx context.Context, id uint) (models.Message, error) {
	var m models.Message
	err := r.db.WithContext(ctx).First(&m, id).Error
	return m, err
}

func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Resubmit replaces the content of message id and returns it to review.
func (r *MessageRepository) Resubmit(ctx context.Context, id uint, content string) error {
	return applyTransition(ctx, r.db, &models.Message{}, "message_id", id, models.Resubmit, map[string]interface{}{
		"content": content,
	})
}

func (r *MessageRepository) UpdateState(ctx context.Context, id uint, t models.Transition) error {
	return applyTransition(ctx, r.db, &models.Message{}, "message_id", id, t, nil)
}

func (r *MessageRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Message{}, id)
	return res.RowsAffected, res.Error
}

func (r *MessageRepository) PageByState(ctx context.Context, state models.State, req orm.PageRequest) (orm.Page[models.Message], error) {
	q := r.db.WithContext(ctx).Model(&models.Message{}).Where("state = ?", int(state))
	return orm.Paginate[models.Message](q, req)
}

func (r *MessageRepository) PageByUser(ctx context.Context, userID string, req orm.PageRequest) (orm.Page[models.Message], error) {
	q := r.db.WithContext(ctx).Model(&models.Message{}).Where("user_id = ?", userID)
	return orm.Paginate[models.Message](q, req)
}
