package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

const venueSort = "venue_id asc"

type VenueStore interface {
	FindByID(ctx context.Context, id uint) (models.Venue, error)
	FindByName(ctx context.Context, name string) (models.Venue, error)
	NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
	CountByName(ctx context.Context, name string, excludeID uint) (int64, error)
	Create(ctx context.Context, v *models.Venue) error
	Update(ctx context.Context, v *models.Venue) error
	Delete(ctx context.Context, id uint) (int64, error)
	Page(ctx context.Context, req orm.PageRequest) (orm.Page[models.Venue], error)
}

type VenueService struct {
	venues VenueStore
}

func NewVenueService(venues VenueStore) *VenueService {
	return &VenueService{venues: venues}
}

func (s *VenueService) Get(ctx context.Context, id uint) (models.Venue, error) {
	v, err := s.venues.FindByID(ctx, id)
	return v, lookup(err, "venue", id)
}

func (s *VenueService) GetByName(ctx context.Context, name string) (models.Venue, error) {
	v, err := s.venues.FindByName(ctx, name)
	return v, lookup(err, "venue", name)
}

// Page lists venues by ID, size per page.
func (s *VenueService) Page(ctx context.Context, page, size int) (orm.Page[models.Venue], error) {
	req, err := pageRequest(page, size, venueSort)
	if err != nil {
		return orm.Page[models.Venue]{}, err
	}
	return s.venues.Page(ctx, req)
}

// NameAvailable reports whether no venue is called name.
func (s *VenueService) NameAvailable(ctx context.Context, name string) (bool, error) {
	n, err := s.venues.CountByName(ctx, strings.TrimSpace(name), 0)
	if err != nil {
		return false, fmt.Errorf("count venues named %q: %w", name, err)
	}
	return n == 0, nil
}

func (s *VenueService) Create(ctx context.Context, v *models.Venue) error {
	if err := checkVenue(v); err != nil {
		return err
	}
	n, err := s.venues.CountByName(ctx, v.VenueName, 0)
	if err != nil {
		return fmt.Errorf("count venues named %q: %w", v.VenueName, err)
	}
	if n > 0 {
		return fmt.Errorf("venue %q: %w", v.VenueName, ErrConflict)
	}
	if err := s.venues.Create(ctx, v); err != nil {
		return fmt.Errorf("create venue %q: %w", v.VenueName, err)
	}
	logger.WithCtx(ctx).Info("venue created", "venue_id", v.VenueID, "name", v.VenueName)
	return nil
}

// Update replaces venue v.VenueID. The new name must not belong to another
// venue.
func (s *VenueService) Update(ctx context.Context, v *models.Venue) error {
	if err := checkVenue(v); err != nil {
		return err
	}
	if _, err := s.venues.FindByID(ctx, v.VenueID); err != nil {
		return lookup(err, "venue", v.VenueID)
	}
	n, err := s.venues.CountByName(ctx, v.VenueName, v.VenueID)
	if err != nil {
		return fmt.Errorf("count venues named %q: %w", v.VenueName, err)
	}
	if n > 0 {
		return fmt.Errorf("venue %q: %w", v.VenueName, ErrConflict)
	}
	if err := s.venues.Update(ctx, v); err != nil {
		return fmt.Errorf("update venue %d: %w", v.VenueID, err)
	}
	return nil
}

func (s *VenueService) Delete(ctx context.Context, id uint) error {
	n, err := s.venues.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("venue %d: %w", id, ErrNotFound)
	}
	logger.WithCtx(ctx).Info("venue deleted", "venue_id", id)
	return nil
}

func checkVenue(v *models.Venue) error {
	v.VenueName = strings.TrimSpace(v.VenueName)
	switch {
	case v.VenueName == "":
		return invalid("venue name is required")
	case v.Price < 0:
		return invalid("venue price %d is negative", v.Price)
	}
	return nil
}
