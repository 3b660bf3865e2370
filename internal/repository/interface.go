package repository

import (
	"context"
	"errors"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrScholarNotFound  = errors.New("scholar not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrArticleNotFound  = errors.New("article not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrUsernameExists   = errors.New("username already exists")
	ErrAlreadyFollowing = errors.New("already following")
	ErrFollowNotFound   = errors.New("follow relationship not found")
)

// UserRepository defines user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetActive(ctx context.Context, id uint, active bool) error
}

// ScholarRepository defines scholar persistence.
type ScholarRepository interface {
	Create(ctx context.Context, scholar *domain.ScholarModel) error
	GetByID(ctx context.Context, id uint) (*domain.ScholarModel, error)
	Update(ctx context.Context, scholar *domain.ScholarModel) error
	List(ctx context.Context, limit, offset int) ([]domain.ScholarModel, int64, error)
}

// FollowRepository covers both follow edge types.
type FollowRepository interface {
	FollowUser(ctx context.Context, followerID, followingID uint) error
	UnfollowUser(ctx context.Context, followerID, followingID uint) error
	IsFollowingUser(ctx context.Context, followerID, followingID uint) (bool, error)
	Followers(ctx context.Context, userID uint, limit, offset int) ([]domain.FollowEntry, int64, error)
	Following(ctx context.Context, userID uint, limit, offset int) ([]domain.FollowEntry, int64, error)

	FollowScholar(ctx context.Context, userID, scholarID uint) error
	UnfollowScholar(ctx context.Context, userID, scholarID uint) error
	// FollowedScholarIDs returns, among candidateIDs, the scholar ids that
	// userID follows. One query regardless of candidate count.
	FollowedScholarIDs(ctx context.Context, userID uint, candidateIDs []uint) (map[uint]bool, error)

	SuggestUsers(ctx context.Context, userID uint, limit int) ([]domain.UserModel, error)
	SuggestScholars(ctx context.Context, userID uint, limit int) ([]domain.ScholarModel, error)
}

// PostRepository defines post persistence.
type PostRepository interface {
	Create(ctx context.Context, post *domain.UserPostModel) error
	GetByID(ctx context.Context, id uint) (*domain.UserPostModel, error)
	List(ctx context.Context, limit, offset int) ([]domain.UserPostModel, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.UserPostModel, error)
	Update(ctx context.Context, post *domain.UserPostModel) error
	Delete(ctx context.Context, id uint) error
	// Timeline returns the newest-first posts of userID and everyone they
	// follow. A non-empty language filters out shared-book posts whose book
	// is in a different language.
	Timeline(ctx context.Context, userID uint, language string, limit, offset int) ([]domain.UserPostModel, error)
}

// BookRepository defines book persistence.
type BookRepository interface {
	Create(ctx context.Context, book *domain.BookModel) error
	GetByID(ctx context.Context, id uint) (*domain.BookModel, error)
	List(ctx context.Context, limit, offset int) ([]domain.BookModel, int64, error)
	ListByScholar(ctx context.Context, scholarID uint) ([]domain.BookModel, error)
}

// ArticleRepository defines article persistence.
type ArticleRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.ArticleModel, error)
}

// LanguageRepository defines the language reference table.
type LanguageRepository interface {
	List(ctx context.Context) ([]domain.LanguageModel, error)
	Ensure(ctx context.Context, code, name string) error
}

// SearchRepository issues the LIKE-based search queries. Every SearchX has a
// CountX built from the same predicate; the pair must never drift apart or
// pagination metadata desyncs.
type SearchRepository interface {
	SearchUsers(ctx context.Context, query string, limit, offset int, excludeUserID uint) ([]domain.UserSearchResult, error)
	CountUsers(ctx context.Context, query string, excludeUserID uint) (int64, error)

	SearchScholars(ctx context.Context, query string, limit, offset int) ([]domain.ScholarSearchResult, error)
	CountScholars(ctx context.Context, query string) (int64, error)

	SearchFollowers(ctx context.Context, query string, limit, offset int, userID uint) ([]domain.FollowSearchResult, error)
	CountFollowers(ctx context.Context, query string, userID uint) (int64, error)

	SearchFollowing(ctx context.Context, query string, limit, offset int, userID uint) ([]domain.FollowSearchResult, error)
	CountFollowing(ctx context.Context, query string, userID uint) (int64, error)
}
