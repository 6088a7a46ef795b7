package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

const userSort = "id asc"

type UserStore interface {
	FindByUserID(ctx context.Context, userID string) (models.User, error)
	FindByID(ctx context.Context, id uint) (models.User, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Rename(ctx context.Context, oldUserID string, user *models.User) error
	Delete(ctx context.Context, id uint) (int64, error)
	PageCustomers(ctx context.Context, req orm.PageRequest) (orm.Page[models.User], error)
}

// Account is the writable part of a user. Password is plain text; an empty
// Password on Modify keeps the stored hash.
type Account struct {
	UserID   string
	UserName string
	Password string
	Email    string
	Phone    string
	Picture  string
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Login checks userID and password. Unknown users and wrong passwords both
// yield ErrBadCredentials.
func (s *UserService) Login(ctx context.Context, userID, password string) (models.User, error) {
	u, err := s.users.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("user %q: %w", userID, ErrBadCredentials)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user %q: %w", userID, err)
	}
	if !auth.CheckPassword(u.Password, password) {
		return models.User{}, fmt.Errorf("user %q: %w", userID, ErrBadCredentials)
	}
	return u, nil
}

// Register creates a customer account.
func (s *UserService) Register(ctx context.Context, a Account) (models.User, error) {
	return s.create(ctx, a, 0)
}

// Create adds a customer account from the admin console.
func (s *UserService) Create(ctx context.Context, a Account) (models.User, error) {
	return s.create(ctx, a, 0)
}

// CreateAdmin adds an operator account. Only the seeder calls it.
func (s *UserService) CreateAdmin(ctx context.Context, a Account) (models.User, error) {
	return s.create(ctx, a, 1)
}

func (s *UserService) create(ctx context.Context, a Account, isAdmin int) (models.User, error) {
	a.UserID = strings.TrimSpace(a.UserID)
	if a.UserID == "" || strings.TrimSpace(a.UserName) == "" || a.Password == "" {
		return models.User{}, invalid("userID, userName and password are required")
	}
	if err := s.ensureFree(ctx, a.UserID); err != nil {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := models.User{
		UserID:   a.UserID,
		UserName: strings.TrimSpace(a.UserName),
		Password: hash,
		Email:    a.Email,
		Phone:    a.Phone,
		Picture:  a.Picture,
		IsAdmin:  isAdmin,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return models.User{}, fmt.Errorf("create user %q: %w", a.UserID, err)
	}
	logger.WithCtx(ctx).Info("user created", "user_id", u.UserID)
	return u, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (models.User, error) {
	u, err := s.users.FindByUserID(ctx, userID)
	return u, lookup(err, "user", userID)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	return u, lookup(err, "user", id)
}

// UpdateProfile rewrites the caller's own account. UserName and Password
// are required; the login ID never changes here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, a Account) (models.User, error) {
	if strings.TrimSpace(a.UserName) == "" || a.Password == "" {
		return models.User{}, invalid("userName and password are required")
	}
	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		return models.User{}, lookup(err, "user", userID)
	}
	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.UserName = strings.TrimSpace(a.UserName)
	u.Password = hash
	u.Email = a.Email
	u.Phone = a.Phone
	if a.Picture != "" {
		u.Picture = a.Picture
	}
	if err := s.users.Update(ctx, &u); err != nil {
		return models.User{}, fmt.Errorf("update user %q: %w", userID, err)
	}
	return u, nil
}

// CheckPassword reports whether password matches userID's stored hash.
func (s *UserService) CheckPassword(ctx context.Context, userID, password string) (bool, error) {
	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		return false, lookup(err, "user", userID)
	}
	return auth.CheckPassword(u.Password, password), nil
}

// Page lists customers, excluding admins.
func (s *UserService) Page(ctx context.Context, page, size int) (orm.Page[models.User], error) {
	req, err := pageRequest(page, size, userSort)
	if err != nil {
		return orm.Page[models.User]{}, err
	}
	return s.users.PageCustomers(ctx, req)
}

// Modify rewrites the account currently known as oldUserID. A changed
// UserID must be free; orders and messages follow the rename.
func (s *UserService) Modify(ctx context.Context, oldUserID string, a Account) (models.User, error) {
	a.UserID = strings.TrimSpace(a.UserID)
	if a.UserID == "" || strings.TrimSpace(a.UserName) == "" {
		return models.User{}, invalid("userID and userName are required")
	}
	u, err := s.users.FindByUserID(ctx, oldUserID)
	if err != nil {
		return models.User{}, lookup(err, "user", oldUserID)
	}
	if a.UserID != oldUserID {
		if err := s.ensureFree(ctx, a.UserID); err != nil {
			return models.User{}, err
		}
	}
	if a.Password != "" {
		hash, err := auth.HashPassword(a.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		u.Password = hash
	}
	u.UserID = a.UserID
	u.UserName = strings.TrimSpace(a.UserName)
	u.Email = a.Email
	u.Phone = a.Phone
	if a.Picture != "" {
		u.Picture = a.Picture
	}
	if err := s.users.Rename(ctx, oldUserID, &u); err != nil {
		return models.User{}, fmt.Errorf("modify user %q: %w", oldUserID, err)
	}
	if a.UserID != oldUserID {
		logger.WithCtx(ctx).Info("user renamed", "from", oldUserID, "to", a.UserID)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	n, err := s.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	logger.WithCtx(ctx).Info("user deleted", "id", id)
	return nil
}

// UserIDAvailable reports whether userID is not taken.
func (s *UserService) UserIDAvailable(ctx context.Context, userID string) (bool, error) {
	n, err := s.users.CountByUserID(ctx, strings.TrimSpace(userID))
	if err != nil {
		return false, fmt.Errorf("count users %q: %w", userID, err)
	}
	return n == 0, nil
}

func (s *UserService) ensureFree(ctx context.Context, userID string) error {
	free, err := s.UserIDAvailable(ctx, userID)
	if err != nil {
		return err
	}
	if !free {
		return fmt.Errorf("user %q: %w", userID, ErrConflict)
	}
	return nil
}
