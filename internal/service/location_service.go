package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"proplist/internal/cache"
	apperrors "proplist/internal/errors"
	"proplist/internal/model"
	"proplist/internal/repository"
)

const locationCacheTTL = 5 * time.Minute

// CreateLocationInput carries the fields for a new location. All are required.
type CreateLocationInput struct {
	Province    string
	City        string
	Suburb      string
	Coordinates string
}

// UpdateLocationInput is a presence-aware partial update: nil fields leave the
// stored value unchanged.
type UpdateLocationInput struct {
	Province    *string
	City        *string
	Suburb      *string
	Coordinates *string
}

// LocationService handles the location registry.
type LocationService interface {
	Create(ctx context.Context, input CreateLocationInput) (*model.Location, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateLocationInput) (*model.Location, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationService struct {
	locations repository.LocationRepository
	cache     *cache.Client
}

// NewLocationService creates a new location service.
func NewLocationService(locations repository.LocationRepository, cache *cache.Client) LocationService {
	return &locationService{locations: locations, cache: cache}
}

func (s *locationService) cacheKey(id uuid.UUID) string {
	return "location:" + id.String()
}

func (s *locationService) Create(ctx context.Context, input CreateLocationInput) (*model.Location, error) {
	location := &model.Location{
		Province:    input.Province,
		City:        input.City,
		Suburb:      input.Suburb,
		Coordinates: input.Coordinates,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return location, nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, input UpdateLocationInput) (*model.Location, error) {
	location, err := s.locations.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrLocationNotFound
	}

	if input.Province != nil {
		location.Province = *input.Province
	}
	if input.City != nil {
		location.City = *input.City
	}
	if input.Suburb != nil {
		location.Suburb = *input.Suburb
	}
	if input.Coordinates != nil {
		location.Coordinates = *input.Coordinates
	}

	if err := s.locations.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))
	return location, nil
}

func (s *locationService) Get(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	var cached model.Location
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	location, err := s.locations.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrLocationNotFound
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), location, locationCacheTTL)
	return location, nil
}

func (s *locationService) List(ctx context.Context) ([]model.Location, error) {
	return s.locations.List(ctx)
}

// Delete removes a location by id. Properties referencing it are left as-is;
// their read path tolerates the dangling reference.
func (s *locationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.locations.FindByID(ctx, id); err != nil {
		return apperrors.ErrLocationNotFound
	}
	if err := s.locations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
