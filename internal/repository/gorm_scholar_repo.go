package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// GormScholarRepository implements ScholarRepository using GORM.
type GormScholarRepository struct {
	db *gorm.DB
}

// NewGormScholarRepository creates a new GORM-based scholar repository.
func NewGormScholarRepository(db *gorm.DB) *GormScholarRepository {
	return &GormScholarRepository{db: db}
}

// Create creates a new scholar record.
func (r *GormScholarRepository) Create(ctx context.Context, scholar *domain.ScholarModel) error {
	return r.db.WithContext(ctx).Create(scholar).Error
}

// GetByID retrieves a scholar by ID.
func (r *GormScholarRepository) GetByID(ctx context.Context, id uint) (*domain.ScholarModel, error) {
	var model domain.ScholarModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrScholarNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// Update persists a scholar record.
func (r *GormScholarRepository) Update(ctx context.Context, scholar *domain.ScholarModel) error {
	result := r.db.WithContext(ctx).Model(&domain.ScholarModel{}).
		Where("id = ?", scholar.ID).
		Updates(scholar)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScholarNotFound
	}
	return nil
}

// List returns scholars ordered by full name with the total count.
func (r *GormScholarRepository) List(ctx context.Context, limit, offset int) ([]domain.ScholarModel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.ScholarModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var scholars []domain.ScholarModel
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&scholars).Error
	if err != nil {
		return nil, 0, err
	}
	return scholars, total, nil
}

var _ ScholarRepository = (*GormScholarRepository)(nil)
