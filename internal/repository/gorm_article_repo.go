package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// GormArticleRepository implements ArticleRepository using GORM.
type GormArticleRepository struct {
	db *gorm.DB
}

// NewGormArticleRepository creates a new GORM-based article repository.
func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// GetByID retrieves an article by ID.
func (r *GormArticleRepository) GetByID(ctx context.Context, id uint) (*domain.ArticleModel, error) {
	var model domain.ArticleModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

var _ ArticleRepository = (*GormArticleRepository)(nil)
