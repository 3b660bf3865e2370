package service

import (
	"context"
	"errors"

	"github.com/mustafayildiz-m/iw-project/internal/audit"
	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
)

// ErrNotPostOwner is returned when a user modifies someone else's post.
var ErrNotPostOwner = errors.New("not the post owner")

// PostService manages user posts, the timeline, and shared references.
type PostService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	scholars repository.ScholarRepository
	books    repository.BookRepository
	articles repository.ArticleRepository
	recorder *audit.Recorder
}

// NewPostService creates a new post service.
func NewPostService(
	posts repository.PostRepository,
	users repository.UserRepository,
	scholars repository.ScholarRepository,
	books repository.BookRepository,
	articles repository.ArticleRepository,
	recorder *audit.Recorder,
) *PostService {
	return &PostService{
		posts:    posts,
		users:    users,
		scholars: scholars,
		books:    books,
		articles: articles,
		recorder: recorder,
	}
}

// Create stores a new post. The shared reference, when present, must point
// at an existing entity.
func (s *PostService) Create(ctx context.Context, userID uint, req *domain.CreatePostRequest, imageURL, videoURL string) (*domain.PostResponse, error) {
	shared, err := domain.ParseSharedRef(req.SharedType, req.SharedID)
	if err != nil {
		return nil, err
	}
	if !shared.IsZero() {
		if _, err := s.ResolveSharedRef(ctx, shared); err != nil {
			return nil, err
		}
	}

	post := &domain.UserPostModel{
		UserID:     userID,
		Type:       req.Type,
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   imageURL,
		VideoURL:   videoURL,
		SharedType: string(shared.Type),
		SharedID:   shared.ID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionPostCreate, userID, map[string]interface{}{
		log.FieldPostID: post.ID,
	})

	resp := post.ToResponse()
	return &resp, nil
}

// Get returns one post.
func (s *PostService) Get(ctx context.Context, id uint) (*domain.PostResponse, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := post.ToResponse()
	return &resp, nil
}

// List returns posts across all users, newest first.
func (s *PostService) List(ctx context.Context, limit, offset int) ([]domain.PostResponse, error) {
	limit, offset = normalizePage(limit, offset)
	posts, err := s.posts.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// ListByUser returns one user's posts, newest first. The user must exist.
func (s *PostService) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.PostResponse, error) {
	limit, offset = normalizePage(limit, offset)
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// Timeline returns the requester's feed: own posts plus posts of followed
// users, optionally filtered by shared-book language.
func (s *PostService) Timeline(ctx context.Context, userID uint, language string, limit, offset int) ([]domain.PostResponse, error) {
	limit, offset = normalizePage(limit, offset)
	posts, err := s.posts.Timeline(ctx, userID, language, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// Update modifies a post. Only the owner may update.
func (s *PostService) Update(ctx context.Context, userID, postID uint, req *domain.UpdatePostRequest) (*domain.PostResponse, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionPostUpdate, userID, map[string]interface{}{
		log.FieldPostID: postID,
	})

	updated, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	resp := updated.ToResponse()
	return &resp, nil
}

// Delete removes a post. Only the owner or an admin may delete.
func (s *PostService) Delete(ctx context.Context, userID uint, role string, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID && role != domain.RoleAdmin {
		return ErrNotPostOwner
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.ActionPostDelete, userID, map[string]interface{}{
		log.FieldPostID: postID,
	})
	return nil
}

// ResolveSharedRef loads the entity behind a shared reference.
func (s *PostService) ResolveSharedRef(ctx context.Context, ref domain.SharedRef) (*domain.SharedRefData, error) {
	data := &domain.SharedRefData{Type: ref.Type}

	switch ref.Type {
	case domain.SharedUser:
		user, err := s.users.GetByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		resp := user.ToResponse()
		data.User = &resp

	case domain.SharedScholar:
		scholar, err := s.scholars.GetByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		resp := scholar.ToResponse()
		data.Scholar = &resp

	case domain.SharedBook:
		book, err := s.books.GetByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		resp := book.ToResponse()
		data.Book = &resp

	case domain.SharedArticle:
		article, err := s.articles.GetByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		resp := article.ToResponse()
		data.Article = &resp

	default:
		return nil, domain.ErrInvalidSharedType
	}

	return data, nil
}

// SharedProfile resolves a raw type+id pair, the read side of shared posts.
func (s *PostService) SharedProfile(ctx context.Context, rawType string, id uint) (*domain.SharedRefData, error) {
	ref, err := domain.ParseSharedRef(rawType, id)
	if err != nil {
		return nil, err
	}
	if ref.IsZero() {
		return nil, domain.ErrInvalidSharedType
	}
	return s.ResolveSharedRef(ctx, ref)
}

func toPostResponses(posts []domain.UserPostModel) []domain.PostResponse {
	responses := make([]domain.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, posts[i].ToResponse())
	}
	return responses
}
