package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/mustafayildiz-m/iw-project/internal/audit"
	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("cannot follow yourself")

const suggestionLimit = 10

// FollowService manages the user→user and user→scholar follow graphs.
type FollowService struct {
	follows  repository.FollowRepository
	users    repository.UserRepository
	scholars repository.ScholarRepository
	recorder *audit.Recorder
}

// NewFollowService creates a new follow service.
func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, scholars repository.ScholarRepository, recorder *audit.Recorder) *FollowService {
	return &FollowService{
		follows:  follows,
		users:    users,
		scholars: scholars,
		recorder: recorder,
	}
}

// FollowUser creates a follow edge toward another user. The target must
// exist; following yourself or an already-followed user is rejected.
func (s *FollowService) FollowUser(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	if _, err := s.users.GetByID(ctx, followingID); err != nil {
		return err
	}

	if err := s.follows.FollowUser(ctx, followerID, followingID); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.ActionFollowUser, followerID, map[string]interface{}{
		"target_user_id": followingID,
	})
	return nil
}

// UnfollowUser removes a follow edge toward another user.
func (s *FollowService) UnfollowUser(ctx context.Context, followerID, followingID uint) error {
	if err := s.follows.UnfollowUser(ctx, followerID, followingID); err != nil {
		return err
	}
	s.recorder.Record(ctx, audit.ActionUnfollowUser, followerID, map[string]interface{}{
		"target_user_id": followingID,
	})
	return nil
}

// Followers lists the users following userID.
func (s *FollowService) Followers(ctx context.Context, userID uint, limit, offset int) (*domain.FollowListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	entries, total, err := s.follows.Followers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &domain.FollowListResponse{Entries: entries, TotalCount: total}, nil
}

// Following lists the users userID follows.
func (s *FollowService) Following(ctx context.Context, userID uint, limit, offset int) (*domain.FollowListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	entries, total, err := s.follows.Following(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &domain.FollowListResponse{Entries: entries, TotalCount: total}, nil
}

// FollowScholar creates a follow edge toward a scholar.
func (s *FollowService) FollowScholar(ctx context.Context, userID, scholarID uint) error {
	if _, err := s.scholars.GetByID(ctx, scholarID); err != nil {
		return err
	}

	if err := s.follows.FollowScholar(ctx, userID, scholarID); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.ActionFollowScholar, userID, map[string]interface{}{
		log.FieldScholarID: scholarID,
	})
	return nil
}

// UnfollowScholar removes a follow edge toward a scholar.
func (s *FollowService) UnfollowScholar(ctx context.Context, userID, scholarID uint) error {
	if err := s.follows.UnfollowScholar(ctx, userID, scholarID); err != nil {
		return err
	}
	s.recorder.Record(ctx, audit.ActionUnfollowSch, userID, map[string]interface{}{
		log.FieldScholarID: scholarID,
	})
	return nil
}

// WhoToFollow suggests users and scholars the requester does not follow yet,
// fetched concurrently.
func (s *FollowService) WhoToFollow(ctx context.Context, userID uint) (*domain.WhoToFollowResponse, error) {
	var (
		users    []domain.UserModel
		scholars []domain.ScholarModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.follows.SuggestUsers(gctx, userID, suggestionLimit)
		return err
	})
	g.Go(func() error {
		var err error
		scholars, err = s.follows.SuggestScholars(gctx, userID, suggestionLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &domain.WhoToFollowResponse{
		Users:    make([]domain.UserResponse, 0, len(users)),
		Scholars: make([]domain.ScholarResponse, 0, len(scholars)),
	}
	for i := range users {
		resp.Users = append(resp.Users, users[i].ToDomain().ToResponse())
	}
	for i := range scholars {
		resp.Scholars = append(resp.Scholars, scholars[i].ToResponse())
	}
	return resp, nil
}
