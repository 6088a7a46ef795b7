package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) FindByID(ctx context.Context, id uint) (models.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrderStore) Create(ctx context.Context, o *models.Order) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		o.OrderID = 1
	}
	return args.Error(0)
}

func (m *mockOrderStore) Reschedule(ctx context.Context, o models.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderStore) UpdateState(ctx context.Context, id uint, t models.Transition) error {
	return m.Called(ctx, id, t).Error(0)
}

func (m *mockOrderStore) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderStore) PageByUser(ctx context.Context, userID string, req orm.PageRequest) (orm.Page[models.Order], error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(orm.Page[models.Order]), args.Error(1)
}

func (m *mockOrderStore) PageByState(ctx context.Context, state models.State, req orm.PageRequest) (orm.Page[models.Order], error) {
	args := m.Called(ctx, state, req)
	return args.Get(0).(orm.Page[models.Order]), args.Error(1)
}

func (m *mockOrderStore) FindByState(ctx context.Context, state models.State) ([]models.Order, error) {
	args := m.Called(ctx, state)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderStore) FindByVenueBetween(ctx context.Context, venueID uint, from, to time.Time) ([]models.Order, error) {
	args := m.Called(ctx, venueID, from, to)
	return args.Get(0).([]models.Order), args.Error(1)
}

type mockVenueLookup struct{ mock.Mock }

func (m *mockVenueLookup) FindByName(ctx context.Context, name string) (models.Venue, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Venue), args.Error(1)
}

func (m *mockVenueLookup) NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uint]string), args.Error(1)
}

type mockMessageStore struct{ mock.Mock }

func (m *mockMessageStore) FindByID(ctx context.Context, id uint) (models.Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Message), args.Error(1)
}

func (m *mockMessageStore) Create(ctx context.Context, msg *models.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessageStore) Resubmit(ctx context.Context, id uint, content string) error {
	return m.Called(ctx, id, content).Error(0)
}

func (m *mockMessageStore) UpdateState(ctx context.Context, id uint, t models.Transition) error {
	return m.Called(ctx, id, t).Error(0)
}

func (m *mockMessageStore) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageStore) PageByState(ctx context.Context, state models.State, req orm.PageRequest) (orm.Page[models.Message], error) {
	args := m.Called(ctx, state, req)
	return args.Get(0).(orm.Page[models.Message]), args.Error(1)
}

func (m *mockMessageStore) PageByUser(ctx context.Context, userID string, req orm.PageRequest) (orm.Page[models.Message], error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(orm.Page[models.Message]), args.Error(1)
}

type mockUserDirectory struct{ mock.Mock }

func (m *mockUserDirectory) FindByUserIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[string]models.User), args.Error(1)
}
