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

const propertyCacheTTL = 5 * time.Minute

// CreatePropertyInput carries the fields for a new listing. ImageURLs are the
// public URLs returned by the upload collaborator, in upload order.
type CreatePropertyInput struct {
	Title           string
	Description     string
	PropertyType    string
	TransactionType string
	Price           float64
	LocationID      string
	ImageURLs       []string
	OwnerID         uuid.UUID
}

// UpdatePropertyInput is a presence-aware partial update: nil fields leave the
// stored value unchanged. A non-nil ImageURLs replaces the image list wholesale.
type UpdatePropertyInput struct {
	Title           *string
	Description     *string
	PropertyType    *string
	TransactionType *string
	Price           *float64
	LocationID      *string
	ImageURLs       []string
}

// PropertyService handles listing operations.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*model.Property, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*model.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyService struct {
	properties repository.PropertyRepository
	locations  repository.LocationRepository
	cache      *cache.Client
}

// NewPropertyService creates a new property service.
func NewPropertyService(properties repository.PropertyRepository, locations repository.LocationRepository, cache *cache.Client) PropertyService {
	return &propertyService{
		properties: properties,
		locations:  locations,
		cache:      cache,
	}
}

func (s *propertyService) cacheKey(id uuid.UUID) string {
	return "property:" + id.String()
}

// Create validates the enumerated fields and the location reference before
// anything is persisted.
func (s *propertyService) Create(ctx context.Context, input CreatePropertyInput) (*model.Property, error) {
	propertyType := model.PropertyType(input.PropertyType)
	if !propertyType.Valid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidPropertyType, input.PropertyType)
	}

	transactionType := model.TransactionType(input.TransactionType)
	if !transactionType.Valid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionType, input.TransactionType)
	}

	locationID, err := uuid.Parse(input.LocationID)
	if err != nil {
		return nil, apperrors.ErrLocationNotFound
	}
	location, err := s.locations.FindByID(ctx, locationID)
	if err != nil {
		return nil, apperrors.ErrLocationNotFound
	}

	if len(input.ImageURLs) == 0 {
		return nil, apperrors.ErrNoImages
	}

	property := &model.Property{
		Title:           input.Title,
		Description:     input.Description,
		PropertyType:    propertyType,
		TransactionType: transactionType,
		Price:           input.Price,
		LocationID:      location.ID,
		Images:          model.StringList(input.ImageURLs),
		OwnerID:         input.OwnerID,
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return property, nil
}

// Update applies only the fields present in the input. The owner is immutable.
func (s *propertyService) Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*model.Property, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrPropertyNotFound
	}

	if input.LocationID != nil {
		locationID, err := uuid.Parse(*input.LocationID)
		if err != nil {
			return nil, apperrors.ErrLocationNotFound
		}
		location, err := s.locations.FindByID(ctx, locationID)
		if err != nil {
			return nil, apperrors.ErrLocationNotFound
		}
		property.LocationID = location.ID
		property.Location = location
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.PropertyType != nil {
		propertyType := model.PropertyType(*input.PropertyType)
		if !propertyType.Valid() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidPropertyType, *input.PropertyType)
		}
		property.PropertyType = propertyType
	}
	if input.TransactionType != nil {
		transactionType := model.TransactionType(*input.TransactionType)
		if !transactionType.Valid() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionType, *input.TransactionType)
		}
		property.TransactionType = transactionType
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if len(input.ImageURLs) > 0 {
		property.Images = model.StringList(input.ImageURLs)
	}

	if err := s.properties.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))
	return property, nil
}

// Get returns a property with its owner resolved, reading through the cache.
func (s *propertyService) Get(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var cached model.Property
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrPropertyNotFound
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), property, propertyCacheTTL)
	return property, nil
}

// List returns all properties with owners resolved. No pagination or ordering
// guarantee beyond store iteration order.
func (s *propertyService) List(ctx context.Context) ([]model.Property, error) {
	return s.properties.List(ctx)
}

// Delete removes a property by id.
func (s *propertyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.properties.FindByID(ctx, id); err != nil {
		return apperrors.ErrPropertyNotFound
	}
	if err := s.properties.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
