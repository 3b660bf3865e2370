package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/mustafayildiz-m/iw-project/internal/cache"
	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchService aggregates the search endpoints. The merged general search
// fans out to per-type queries, annotates scholar results with the
// requester's follow state, shuffles the merged page and caches the result.
type SearchService struct {
	search  repository.SearchRepository
	follows repository.FollowRepository
	cache   cache.SearchCache
	ttl     time.Duration
	group   singleflight.Group
}

// NewSearchService creates a new search service.
func NewSearchService(search repository.SearchRepository, follows repository.FollowRepository, searchCache cache.SearchCache, ttl time.Duration) *SearchService {
	return &SearchService{
		search:  search,
		follows: follows,
		cache:   searchCache,
		ttl:     ttl,
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// SearchUsers searches active users, excluding the requester from results.
func (s *SearchService) SearchUsers(ctx context.Context, query string, limit, offset int, requesterID uint) (*domain.UserSearchResponse, error) {
	limit, offset = normalizePage(limit, offset)

	var (
		results []domain.UserSearchResult
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = s.search.SearchUsers(gctx, query, limit, offset, requesterID)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.search.CountUsers(gctx, query, requesterID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.UserSearchResponse{
		Results:     results,
		TotalCount:  total,
		HasMore:     int64(offset+limit) < total,
		SearchQuery: query,
	}, nil
}

// SearchScholars searches scholars. When the requester is known each result
// carries whether the requester already follows that scholar, resolved in a
// single batched query.
func (s *SearchService) SearchScholars(ctx context.Context, query string, limit, offset int, requesterID uint) (*domain.ScholarSearchResponse, error) {
	limit, offset = normalizePage(limit, offset)

	var (
		results []domain.ScholarSearchResult
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = s.search.SearchScholars(gctx, query, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.search.CountScholars(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if requesterID != 0 && len(results) > 0 {
		if err := s.annotateScholars(ctx, requesterID, results); err != nil {
			return nil, err
		}
	}

	return &domain.ScholarSearchResponse{
		Results:     results,
		TotalCount:  total,
		HasMore:     int64(offset+limit) < total,
		SearchQuery: query,
	}, nil
}

func (s *SearchService) annotateScholars(ctx context.Context, requesterID uint, results []domain.ScholarSearchResult) error {
	ids := make([]uint, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	followed, err := s.follows.FollowedScholarIDs(ctx, requesterID, ids)
	if err != nil {
		return err
	}
	for i := range results {
		v := followed[results[i].ID]
		results[i].IsFollowed = &v
	}
	return nil
}

// SearchFollowers searches within the requester's followers.
func (s *SearchService) SearchFollowers(ctx context.Context, query string, limit, offset int, requesterID uint) (*domain.FollowSearchResponse, error) {
	return s.searchFollowGraph(ctx, query, limit, offset, requesterID,
		s.search.SearchFollowers, s.search.CountFollowers)
}

// SearchFollowing searches within the users the requester follows.
func (s *SearchService) SearchFollowing(ctx context.Context, query string, limit, offset int, requesterID uint) (*domain.FollowSearchResponse, error) {
	return s.searchFollowGraph(ctx, query, limit, offset, requesterID,
		s.search.SearchFollowing, s.search.CountFollowing)
}

func (s *SearchService) searchFollowGraph(
	ctx context.Context,
	query string,
	limit, offset int,
	requesterID uint,
	fetch func(context.Context, string, int, int, uint) ([]domain.FollowSearchResult, error),
	count func(context.Context, string, uint) (int64, error),
) (*domain.FollowSearchResponse, error) {
	limit, offset = normalizePage(limit, offset)

	var (
		results []domain.FollowSearchResult
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = fetch(gctx, query, limit, offset, requesterID)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx, query, requesterID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.FollowSearchResponse{
		Results:     results,
		TotalCount:  total,
		HasMore:     int64(offset+limit) < total,
		SearchQuery: query,
	}, nil
}

func normalizeType(searchType string) string {
	switch searchType {
	case domain.SearchTypeUsers, domain.SearchTypeScholars:
		return searchType
	default:
		return domain.SearchTypeAll
	}
}

// GeneralSearch merges user and scholar results into one shuffled page of
// type-tagged items. A single-type request goes through the same path, so
// its items stay tagged and paged the same way. Identical concurrent queries
// collapse into one database round trip, and pages are served from the cache
// for the configured TTL.
func (s *SearchService) GeneralSearch(ctx context.Context, query, searchType string, limit, offset int, requesterID uint) (*domain.GeneralSearchResponse, error) {
	limit, offset = normalizePage(limit, offset)
	searchType = normalizeType(searchType)
	key := s.cache.BuildKey(query, searchType, limit, offset, requesterID)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Ctx(ctx).Warn().Err(err).Str(log.FieldQuery, query).Msg("search cache read failed")
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// The execution is shared with collapsed callers, so it must not die
		// with the first caller's cancellation.
		return s.generalSearch(context.WithoutCancel(ctx), query, searchType, limit, offset, requesterID)
	})
	if err != nil {
		return nil, err
	}
	response := v.(*domain.GeneralSearchResponse)

	if err := s.cache.Set(ctx, key, response, s.ttl); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str(log.FieldQuery, query).Msg("search cache write failed")
	}
	return response, nil
}

func (s *SearchService) generalSearch(ctx context.Context, query, searchType string, limit, offset int, requesterID uint) (*domain.GeneralSearchResponse, error) {
	// Each type gets half the page, rounded up, even when only one type is
	// requested.
	half := (limit + 1) / 2

	var (
		users        []domain.UserSearchResult
		scholars     []domain.ScholarSearchResult
		userCount    int64
		scholarCount int64
	)

	g, gctx := errgroup.WithContext(ctx)
	if searchType != domain.SearchTypeScholars {
		g.Go(func() error {
			var err error
			users, err = s.search.SearchUsers(gctx, query, half, offset, requesterID)
			return err
		})
		g.Go(func() error {
			var err error
			userCount, err = s.search.CountUsers(gctx, query, requesterID)
			return err
		})
	}
	if searchType != domain.SearchTypeUsers {
		g.Go(func() error {
			var err error
			scholars, err = s.search.SearchScholars(gctx, query, half, offset)
			return err
		})
		g.Go(func() error {
			var err error
			scholarCount, err = s.search.CountScholars(gctx, query)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if requesterID != 0 && len(scholars) > 0 {
		if err := s.annotateScholars(ctx, requesterID, scholars); err != nil {
			return nil, err
		}
	}

	merged := make([]domain.SearchResultItem, 0, len(users)+len(scholars))
	for _, u := range users {
		merged = append(merged, domain.SearchResultItem{
			Type:      domain.ResultTypeUser,
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
			FullName:  u.FullName,
			Role:      u.Role,
			PhotoURL:  u.PhotoURL,
		})
	}
	for _, sc := range scholars {
		merged = append(merged, domain.SearchResultItem{
			Type:         domain.ResultTypeScholar,
			ID:           sc.ID,
			FullName:     sc.FullName,
			PhotoURL:     sc.PhotoURL,
			Biography:    sc.Biography,
			BirthDate:    sc.BirthDate,
			DeathDate:    sc.DeathDate,
			LocationName: sc.LocationName,
			IsFollowed:   sc.IsFollowed,
		})
	}

	// Interleave the types instead of listing all users first.
	rand.Shuffle(len(merged), func(i, j int) {
		merged[i], merged[j] = merged[j], merged[i]
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	total := userCount + scholarCount
	return &domain.GeneralSearchResponse{
		Results: merged,
		// HasMore is approximate: the page mixes two independently paginated
		// result sets, so the sum comparison can overshoot near the end.
		TotalCount:  total,
		HasMore:     int64(offset+limit) < total,
		SearchQuery: query,
	}, nil
}
