package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// GormLanguageRepository implements LanguageRepository using GORM.
type GormLanguageRepository struct {
	db *gorm.DB
}

// NewGormLanguageRepository creates a new GORM-based language repository.
func NewGormLanguageRepository(db *gorm.DB) *GormLanguageRepository {
	return &GormLanguageRepository{db: db}
}

// List returns the active languages ordered by name.
func (r *GormLanguageRepository) List(ctx context.Context) ([]domain.LanguageModel, error) {
	var languages []domain.LanguageModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&languages).Error
	if err != nil {
		return nil, err
	}
	return languages, nil
}

// Ensure inserts the language if its code is not present yet. Idempotent, so
// the startup seeder can run on every boot.
func (r *GormLanguageRepository) Ensure(ctx context.Context, code, name string) error {
	return r.db.WithContext(ctx).
		Where(domain.LanguageModel{Code: code}).
		Attrs(domain.LanguageModel{Name: name, IsActive: true}).
		FirstOrCreate(&domain.LanguageModel{}).Error
}

var _ LanguageRepository = (*GormLanguageRepository)(nil)
