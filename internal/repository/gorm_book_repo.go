package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// GormBookRepository implements BookRepository using GORM.
type GormBookRepository struct {
	db *gorm.DB
}

// NewGormBookRepository creates a new GORM-based book repository.
func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create creates a new book record.
func (r *GormBookRepository) Create(ctx context.Context, book *domain.BookModel) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// GetByID retrieves a book by ID.
func (r *GormBookRepository) GetByID(ctx context.Context, id uint) (*domain.BookModel, error) {
	var model domain.BookModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// List returns books ordered by title with the total count.
func (r *GormBookRepository) List(ctx context.Context, limit, offset int) ([]domain.BookModel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.BookModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []domain.BookModel
	err := r.db.WithContext(ctx).
		Order("title ASC").
		Limit(limit).
		Offset(offset).
		Find(&books).Error
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// ListByScholar returns a scholar's books ordered by title.
func (r *GormBookRepository) ListByScholar(ctx context.Context, scholarID uint) ([]domain.BookModel, error) {
	var books []domain.BookModel
	err := r.db.WithContext(ctx).
		Where("scholar_id = ?", scholarID).
		Order("title ASC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

var _ BookRepository = (*GormBookRepository)(nil)
