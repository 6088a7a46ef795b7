package seeders

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/app/repositories"
	"github.com/shashiranjanraj/venuebook/app/services"
)

func init() {
	Register("users", SeedUsers)
	Register("venues", SeedVenues)
	Register("news", SeedNews)
}

// existing treats a duplicate as already seeded.
func existing(err error) error {
	if errors.Is(err, services.ErrConflict) {
		return nil
	}
	return err
}

// SeedUsers creates the demo administrator and one customer.
func SeedUsers(ctx context.Context, db *gorm.DB) error {
	users := services.NewUserService(repositories.NewUserRepository(db))

	_, err := users.CreateAdmin(ctx, services.Account{
		UserID:   "admin",
		UserName: "管理员",
		Password: "admin",
		Email:    "admin@venuebook.local",
	})
	if err := existing(err); err != nil {
		return err
	}

	_, err = users.Create(ctx, services.Account{
		UserID:   "test",
		UserName: "测试用户",
		Password: "test",
		Email:    "test@venuebook.local",
		Phone:    "13800000000",
	})
	return existing(err)
}

var demoVenues = []models.Venue{
	{VenueName: "羽毛球场A", Description: "体育馆", Price: 60, Address: "一号馆二层", OpenTime: "08:00", CloseTime: "22:00"},
	{VenueName: "篮球场", Description: "室外", Price: 100, Address: "东区操场", OpenTime: "07:00", CloseTime: "21:00"},
	{VenueName: "游泳池", Description: "游泳馆", Price: 40, Address: "游泳馆一层", OpenTime: "09:00", CloseTime: "20:00"},
}

func SeedVenues(ctx context.Context, db *gorm.DB) error {
	venues := services.NewVenueService(repositories.NewVenueRepository(db))
	for i := range demoVenues {
		v := demoVenues[i]
		if err := existing(venues.Create(ctx, &v)); err != nil {
			return err
		}
	}
	return nil
}

// SeedNews adds a welcome notice once.
func SeedNews(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.News{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	news := services.NewNewsService(repositories.NewNewsRepository(db))
	_, err := news.Create(ctx, "场馆开放通知", "所有场馆已开放预约，请在个人中心查看订单审核状态。")
	return err
}
