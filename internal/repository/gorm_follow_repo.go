package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// isUniqueViolation reports whether err is a unique-constraint violation.
// TranslateError maps these to gorm.ErrDuplicatedKey across drivers.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// GormFollowRepository implements FollowRepository for both edge types.
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GORM-backed follow repository.
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// FollowUser creates a user→user follow edge.
func (r *GormFollowRepository) FollowUser(ctx context.Context, followerID, followingID uint) error {
	model := domain.UserFollowModel{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// UnfollowUser removes a user→user follow edge.
func (r *GormFollowRepository) UnfollowUser(ctx context.Context, followerID, followingID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&domain.UserFollowModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// IsFollowingUser checks if followerID follows followingID.
func (r *GormFollowRepository) IsFollowingUser(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.UserFollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Followers lists the active users following userID, newest edge first.
func (r *GormFollowRepository) Followers(ctx context.Context, userID uint, limit, offset int) ([]domain.FollowEntry, int64, error) {
	return r.listEdges(ctx, userID, "user_follows.following_id = ?", "users.id = user_follows.follower_id", limit, offset)
}

// Following lists the active users userID follows, newest edge first.
func (r *GormFollowRepository) Following(ctx context.Context, userID uint, limit, offset int) ([]domain.FollowEntry, int64, error) {
	return r.listEdges(ctx, userID, "user_follows.follower_id = ?", "users.id = user_follows.following_id", limit, offset)
}

func (r *GormFollowRepository) listEdges(ctx context.Context, userID uint, scope, joinOn string, limit, offset int) ([]domain.FollowEntry, int64, error) {
	base := r.db.WithContext(ctx).
		Table("user_follows").
		Joins("JOIN users ON "+joinOn).
		Where(scope, userID).
		Where("users.is_active = ?", true)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var scanned []struct {
		ID        uint
		CreatedAt time.Time
		UserID    uint
		Email     string
		Username  string
		FirstName string
		LastName  string
		Role      string
		PhotoURL  string
	}
	err := base.Session(&gorm.Session{}).
		Select("user_follows.id, user_follows.created_at, users.id AS user_id, users.email, users.username, users.first_name, users.last_name, users.role, users.photo_url").
		Order("user_follows.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&scanned).Error
	if err != nil {
		return nil, 0, err
	}

	entries := make([]domain.FollowEntry, 0, len(scanned))
	for _, row := range scanned {
		entries = append(entries, domain.FollowEntry{
			FollowID:   row.ID,
			FollowedAt: row.CreatedAt,
			User: domain.UserResponse{
				ID:        row.UserID,
				Email:     row.Email,
				Username:  row.Username,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				Role:      row.Role,
				PhotoURL:  row.PhotoURL,
			},
		})
	}
	return entries, total, nil
}

// FollowScholar creates a user→scholar follow edge.
func (r *GormFollowRepository) FollowScholar(ctx context.Context, userID, scholarID uint) error {
	model := domain.UserScholarFollowModel{
		UserID:    userID,
		ScholarID: scholarID,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// UnfollowScholar removes a user→scholar follow edge.
func (r *GormFollowRepository) UnfollowScholar(ctx context.Context, userID, scholarID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND scholar_id = ?", userID, scholarID).
		Delete(&domain.UserScholarFollowModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// FollowedScholarIDs returns which of candidateIDs the user follows, fetched
// in a single query to avoid per-candidate lookups.
func (r *GormFollowRepository) FollowedScholarIDs(ctx context.Context, userID uint, candidateIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		result[id] = false
	}

	if len(candidateIDs) == 0 {
		return result, nil
	}

	var followed []uint
	err := r.db.WithContext(ctx).Model(&domain.UserScholarFollowModel{}).
		Where("user_id = ? AND scholar_id IN ?", userID, candidateIDs).
		Pluck("scholar_id", &followed).Error
	if err != nil {
		return nil, err
	}

	for _, id := range followed {
		result[id] = true
	}
	return result, nil
}

// SuggestUsers returns active users the requester does not follow yet.
func (r *GormFollowRepository) SuggestUsers(ctx context.Context, userID uint, limit int) ([]domain.UserModel, error) {
	sub := r.db.Model(&domain.UserFollowModel{}).
		Select("following_id").
		Where("follower_id = ?", userID)

	var users []domain.UserModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("id <> ?", userID).
		Where("id NOT IN (?)", sub).
		Order("id DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SuggestScholars returns scholars the requester does not follow yet.
func (r *GormFollowRepository) SuggestScholars(ctx context.Context, userID uint, limit int) ([]domain.ScholarModel, error) {
	sub := r.db.Model(&domain.UserScholarFollowModel{}).
		Select("scholar_id").
		Where("user_id = ?", userID)

	var scholars []domain.ScholarModel
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Order("id DESC").
		Limit(limit).
		Find(&scholars).Error
	if err != nil {
		return nil, err
	}
	return scholars, nil
}

var _ FollowRepository = (*GormFollowRepository)(nil)
