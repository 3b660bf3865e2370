package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// GormPostRepository implements PostRepository using GORM.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based post repository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post.
func (r *GormPostRepository) Create(ctx context.Context, post *domain.UserPostModel) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID retrieves a post by ID.
func (r *GormPostRepository) GetByID(ctx context.Context, id uint) (*domain.UserPostModel, error) {
	var model domain.UserPostModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// List returns posts across all users, newest first.
func (r *GormPostRepository) List(ctx context.Context, limit, offset int) ([]domain.UserPostModel, error) {
	var posts []domain.UserPostModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByUser returns one user's posts, newest first.
func (r *GormPostRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.UserPostModel, error) {
	var posts []domain.UserPostModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update persists mutable post fields.
func (r *GormPostRepository) Update(ctx context.Context, post *domain.UserPostModel) error {
	result := r.db.WithContext(ctx).Model(&domain.UserPostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":     post.Title,
			"content":   post.Content,
			"image_url": post.ImageURL,
			"video_url": post.VideoURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes a post.
func (r *GormPostRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.UserPostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Timeline returns the posts of userID plus everyone userID follows, newest
// first. When language is set, shared-book posts are kept only if the shared
// book is in that language; every other post passes the filter.
func (r *GormPostRepository) Timeline(ctx context.Context, userID uint, language string, limit, offset int) ([]domain.UserPostModel, error) {
	followed := r.db.Model(&domain.UserFollowModel{}).
		Select("following_id").
		Where("follower_id = ?", userID)

	q := r.db.WithContext(ctx).
		Where("user_id = ? OR user_id IN (?)", userID, followed)

	if language != "" {
		books := r.db.Model(&domain.BookModel{}).
			Select("id").
			Where("language_code = ?", language)
		q = q.Where("shared_type <> ? OR shared_id IN (?)", domain.SharedBook, books)
	}

	var posts []domain.UserPostModel
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

var _ PostRepository = (*GormPostRepository)(nil)
