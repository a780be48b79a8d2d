package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proplist/internal/model"
)

// PropertyRepository defines property persistence operations. Reads resolve
// the owner and, when it still exists, the referenced location.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	Update(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository builds a GORM-backed repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) Update(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Location").
		Where("id = ?", id).
		First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Location").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Property{}).Error
}
