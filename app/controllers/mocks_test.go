package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type mockVenues struct{ mock.Mock }

func (m *mockVenues) Get(ctx context.Context, id uint) (models.Venue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Venue), args.Error(1)
}

func (m *mockVenues) Page(ctx context.Context, page, size int) (orm.Page[models.Venue], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(orm.Page[models.Venue]), args.Error(1)
}

func (m *mockVenues) NameAvailable(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockVenues) Create(ctx context.Context, v *models.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVenues) Update(ctx context.Context, v *models.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVenues) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockNews struct{ mock.Mock }

func (m *mockNews) Get(ctx context.Context, id uint) (models.News, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.News), args.Error(1)
}

func (m *mockNews) Page(ctx context.Context, page, size int) (orm.Page[models.News], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(orm.Page[models.News]), args.Error(1)
}

func (m *mockNews) Create(ctx context.Context, title, content string) (models.News, error) {
	args := m.Called(ctx, title, content)
	return args.Get(0).(models.News), args.Error(1)
}

func (m *mockNews) Update(ctx context.Context, id uint, title, content string) error {
	return m.Called(ctx, id, title, content).Error(0)
}

func (m *mockNews) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrders struct{ mock.Mock }

func (m *mockOrders) Place(ctx context.Context, userID string, b services.Booking) (models.Order, error) {
	args := m.Called(ctx, userID, b)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrders) Reschedule(ctx context.Context, userID string, id uint, b services.Booking) error {
	return m.Called(ctx, userID, id, b).Error(0)
}

func (m *mockOrders) GetOwned(ctx context.Context, userID string, id uint) (models.Order, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrders) Finish(ctx context.Context, userID string, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockOrders) DeleteOwned(ctx context.Context, userID string, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockOrders) Confirm(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOrders) Reject(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOrders) UserOrders(ctx context.Context, userID string, page int) (orm.Page[models.OrderVo], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(orm.Page[models.OrderVo]), args.Error(1)
}

func (m *mockOrders) Pending(ctx context.Context, page int) (orm.Page[models.OrderVo], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(orm.Page[models.OrderVo]), args.Error(1)
}

func (m *mockOrders) Approved(ctx context.Context) ([]models.OrderVo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.OrderVo), args.Error(1)
}

func (m *mockOrders) VenueDay(ctx context.Context, venueName, date string) (services.VenueDay, error) {
	args := m.Called(ctx, venueName, date)
	return args.Get(0).(services.VenueDay), args.Error(1)
}

type mockMessages struct{ mock.Mock }

func (m *mockMessages) Send(ctx context.Context, userID, content string) (models.Message, error) {
	args := m.Called(ctx, userID, content)
	return args.Get(0).(models.Message), args.Error(1)
}

func (m *mockMessages) Modify(ctx context.Context, userID string, id uint, content string) error {
	return m.Called(ctx, userID, id, content).Error(0)
}

func (m *mockMessages) DeleteOwned(ctx context.Context, userID string, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockMessages) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMessages) Confirm(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMessages) Reject(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMessages) Approved(ctx context.Context, page int) (orm.Page[models.MessageVo], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(orm.Page[models.MessageVo]), args.Error(1)
}

func (m *mockMessages) Pending(ctx context.Context, page int) (orm.Page[models.MessageVo], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(orm.Page[models.MessageVo]), args.Error(1)
}

func (m *mockMessages) ByUser(ctx context.Context, userID string, page int) (orm.Page[models.MessageVo], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(orm.Page[models.MessageVo]), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Login(ctx context.Context, userID, password string) (models.User, error) {
	args := m.Called(ctx, userID, password)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) Register(ctx context.Context, a services.Account) (models.User, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) Create(ctx context.Context, a services.Account) (models.User, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) Get(ctx context.Context, userID string) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) GetByID(ctx context.Context, id uint) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) UpdateProfile(ctx context.Context, userID string, a services.Account) (models.User, error) {
	args := m.Called(ctx, userID, a)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) CheckPassword(ctx context.Context, userID, password string) (bool, error) {
	args := m.Called(ctx, userID, password)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsers) Page(ctx context.Context, page, size int) (orm.Page[models.User], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(orm.Page[models.User]), args.Error(1)
}

func (m *mockUsers) Modify(ctx context.Context, oldUserID string, a services.Account) (models.User, error) {
	args := m.Called(ctx, oldUserID, a)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUsers) UserIDAvailable(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
