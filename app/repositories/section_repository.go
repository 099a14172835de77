package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type SectionRepositoryImpl interface {
	GetActive(ctx context.Context) ([]models.Section, error)
	GetAll(ctx context.Context) ([]models.Section, error)
	GetByID(ctx context.Context, id string) (*models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, id string) error
}

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepositoryImpl {
	return &SectionRepository{db}
}

func (r *SectionRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Products.Images").
		Preload("Bundles.Items").
		Preload("Bundles.Slots.Products")
}

func (r *SectionRepository) GetActive(ctx context.Context) ([]models.Section, error) {
	var sections []models.Section
	err := r.preloaded(ctx).
		Where("is_active = ?", true).
		Order("position ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *SectionRepository) GetAll(ctx context.Context) ([]models.Section, error) {
	var sections []models.Section
	if err := r.preloaded(ctx).Order("position ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	var section models.Section
	if err := r.preloaded(ctx).First(&section, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	return r.DB.WithContext(ctx).Create(section).Error
}

func (r *SectionRepository) Update(ctx context.Context, section *models.Section) error {
	return r.DB.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(section).Error
}

func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.Section{}, "id = ?", id).Error
}
