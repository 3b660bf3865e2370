package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// GormSearchRepository implements SearchRepository with parameterized LIKE
// queries. Each fetch/count pair is built from one shared predicate builder
// so the pair cannot drift apart.
type GormSearchRepository struct {
	db *gorm.DB
}

// NewGormSearchRepository creates a new GORM-based search repository.
func NewGormSearchRepository(db *gorm.DB) *GormSearchRepository {
	return &GormSearchRepository{db: db}
}

// userPredicate scopes to active users matching the substring over name,
// username and email, excluding the requester when given.
func (r *GormSearchRepository) userPredicate(ctx context.Context, query string, excludeUserID uint) *gorm.DB {
	pattern := "%" + query + "%"
	q := r.db.WithContext(ctx).Model(&domain.UserModel{}).
		Where("is_active = ?", true).
		Where("(first_name LIKE ? OR last_name LIKE ? OR username LIKE ? OR email LIKE ?)",
			pattern, pattern, pattern, pattern)
	if excludeUserID != 0 {
		q = q.Where("id <> ?", excludeUserID)
	}
	return q
}

// SearchUsers returns the flattened user view models, first name ascending.
func (r *GormSearchRepository) SearchUsers(ctx context.Context, query string, limit, offset int, excludeUserID uint) ([]domain.UserSearchResult, error) {
	var results []domain.UserSearchResult
	err := r.userPredicate(ctx, query, excludeUserID).
		Select("id, first_name, last_name, username, photo_url, role").
		Order("first_name ASC").
		Limit(limit).
		Offset(offset).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].FullName = results[i].FirstName + " " + results[i].LastName
	}
	return results, nil
}

// CountUsers counts the full match set of the SearchUsers predicate.
func (r *GormSearchRepository) CountUsers(ctx context.Context, query string, excludeUserID uint) (int64, error) {
	var count int64
	err := r.userPredicate(ctx, query, excludeUserID).Count(&count).Error
	return count, err
}

// scholarPredicate matches the substring over full name and biography.
func (r *GormSearchRepository) scholarPredicate(ctx context.Context, query string) *gorm.DB {
	pattern := "%" + query + "%"
	return r.db.WithContext(ctx).Model(&domain.ScholarModel{}).
		Where("(full_name LIKE ? OR biography LIKE ?)", pattern, pattern)
}

// SearchScholars returns scholar view models, full name ascending.
func (r *GormSearchRepository) SearchScholars(ctx context.Context, query string, limit, offset int) ([]domain.ScholarSearchResult, error) {
	var results []domain.ScholarSearchResult
	err := r.scholarPredicate(ctx, query).
		Select("id, full_name, photo_url, birth_date, death_date, location_name, biography").
		Order("full_name ASC").
		Limit(limit).
		Offset(offset).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountScholars counts the full match set of the SearchScholars predicate.
func (r *GormSearchRepository) CountScholars(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.scholarPredicate(ctx, query).Count(&count).Error
	return count, err
}

// followerPredicate scopes the user substring match (name, username, email)
// to inbound follow edges of userID.
func (r *GormSearchRepository) followerPredicate(ctx context.Context, query string, userID uint) *gorm.DB {
	pattern := "%" + query + "%"
	return r.db.WithContext(ctx).
		Table("user_follows").
		Joins("JOIN users ON users.id = user_follows.follower_id").
		Where("user_follows.following_id = ?", userID).
		Where("users.is_active = ?", true).
		Where("(users.first_name LIKE ? OR users.last_name LIKE ? OR users.username LIKE ? OR users.email LIKE ?)",
			pattern, pattern, pattern, pattern)
}

// followingPredicate scopes the match to outbound edges of userID. Unlike
// followerPredicate it does not match email; the asymmetry mirrors observed
// product behavior and is intentional here.
func (r *GormSearchRepository) followingPredicate(ctx context.Context, query string, userID uint) *gorm.DB {
	pattern := "%" + query + "%"
	return r.db.WithContext(ctx).
		Table("user_follows").
		Joins("JOIN users ON users.id = user_follows.following_id").
		Where("user_follows.follower_id = ?", userID).
		Where("users.is_active = ?", true).
		Where("(users.first_name LIKE ? OR users.last_name LIKE ? OR users.username LIKE ?)",
			pattern, pattern, pattern)
}

const followSelect = "user_follows.id AS follow_id, users.id AS id, users.first_name, users.last_name, users.username, users.photo_url, users.role"

func scanFollowResults(q *gorm.DB, limit, offset int) ([]domain.FollowSearchResult, error) {
	var results []domain.FollowSearchResult
	err := q.Select(followSelect).
		Order("user_follows.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].FullName = results[i].FirstName + " " + results[i].LastName
	}
	return results, nil
}

// SearchFollowers searches among the users following userID.
func (r *GormSearchRepository) SearchFollowers(ctx context.Context, query string, limit, offset int, userID uint) ([]domain.FollowSearchResult, error) {
	return scanFollowResults(r.followerPredicate(ctx, query, userID), limit, offset)
}

// CountFollowers counts the full follower match set.
func (r *GormSearchRepository) CountFollowers(ctx context.Context, query string, userID uint) (int64, error) {
	var count int64
	err := r.followerPredicate(ctx, query, userID).Count(&count).Error
	return count, err
}

// SearchFollowing searches among the users userID follows.
func (r *GormSearchRepository) SearchFollowing(ctx context.Context, query string, limit, offset int, userID uint) ([]domain.FollowSearchResult, error) {
	return scanFollowResults(r.followingPredicate(ctx, query, userID), limit, offset)
}

// CountFollowing counts the full following match set.
func (r *GormSearchRepository) CountFollowing(ctx context.Context, query string, userID uint) (int64, error) {
	var count int64
	err := r.followingPredicate(ctx, query, userID).Count(&count).Error
	return count, err
}

var _ SearchRepository = (*GormSearchRepository)(nil)
