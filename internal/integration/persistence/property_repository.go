package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/integration/persistence/model"
)

// propertyRepository implements the adapter.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository(db *gorm.DB) adapter.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// List retrieves all properties ordered by ID.
func (r *propertyRepository) List(ctx context.Context) ([]entity.Property, error) {
	var propertyModels []model.PropertyModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&propertyModels).Error; err != nil {
		return nil, err
	}

	properties := make([]entity.Property, len(propertyModels))
	for i := range propertyModels {
		properties[i] = propertyModels[i].ToEntity()
	}
	return properties, nil
}

// FindByID retrieves a property by its ID.
func (r *propertyRepository) FindByID(ctx context.Context, id int64) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&propertyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPropertyNotFound
		}
		return nil, result.Error
	}
	property := propertyModel.ToEntity()
	return &property, nil
}

// ExistsByID checks if a property exists.
func (r *propertyRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.PropertyModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Create creates a new property in the database and sets its ID.
func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	if err := r.db.WithContext(ctx).Create(propertyModel).Error; err != nil {
		return err
	}
	property.ID = propertyModel.ID
	return nil
}
