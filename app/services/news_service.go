package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

const newsSort = "time desc"

type NewsStore interface {
	FindByID(ctx context.Context, id uint) (models.News, error)
	Create(ctx context.Context, n *models.News) error
	Update(ctx context.Context, n *models.News) error
	Delete(ctx context.Context, id uint) (int64, error)
	Page(ctx context.Context, req orm.PageRequest) (orm.Page[models.News], error)
}

type NewsService struct {
	news NewsStore
	now  func() time.Time
}

func NewNewsService(news NewsStore) *NewsService {
	return &NewsService{news: news, now: time.Now}
}

func (s *NewsService) Get(ctx context.Context, id uint) (models.News, error) {
	n, err := s.news.FindByID(ctx, id)
	return n, lookup(err, "news", id)
}

// Page lists news newest first.
func (s *NewsService) Page(ctx context.Context, page, size int) (orm.Page[models.News], error) {
	req, err := pageRequest(page, size, newsSort)
	if err != nil {
		return orm.Page[models.News]{}, err
	}
	return s.news.Page(ctx, req)
}

func (s *NewsService) Create(ctx context.Context, title, content string) (models.News, error) {
	if err := checkNews(title, content); err != nil {
		return models.News{}, err
	}
	n := models.News{Title: strings.TrimSpace(title), Content: content, Time: s.now()}
	if err := s.news.Create(ctx, &n); err != nil {
		return models.News{}, fmt.Errorf("create news: %w", err)
	}
	return n, nil
}

// Update replaces title and content of news id and stamps it now.
func (s *NewsService) Update(ctx context.Context, id uint, title, content string) error {
	if err := checkNews(title, content); err != nil {
		return err
	}
	n, err := s.news.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "news", id)
	}
	n.Title = strings.TrimSpace(title)
	n.Content = content
	n.Time = s.now()
	if err := s.news.Update(ctx, &n); err != nil {
		return fmt.Errorf("update news %d: %w", id, err)
	}
	return nil
}

func (s *NewsService) Delete(ctx context.Context, id uint) error {
	n, err := s.news.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete news %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("news %d: %w", id, ErrNotFound)
	}
	return nil
}

func checkNews(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return invalid("news title is required")
	}
	if strings.TrimSpace(content) == "" {
		return invalid("news content is required")
	}
	return nil
}
