package service

import (
	"context"
	"testing"
	"time"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
)

type searchFixture struct {
	svc     *SearchService
	cache   *memoryCache
	follows *repository.GormFollowRepository

	addUser    func(firstName, lastName, username, email string) uint
	addScholar func(fullName, bio string) uint
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()
	db := newTestDB(t)
	searchRepo := repository.NewGormSearchRepository(db)
	followRepo := repository.NewGormFollowRepository(db)
	mc := newMemoryCache()

	return &searchFixture{
		svc:     NewSearchService(searchRepo, followRepo, mc, time.Minute),
		cache:   mc,
		follows: followRepo,
		addUser: func(firstName, lastName, username, email string) uint {
			return createUser(t, db, firstName, lastName, username, email, true)
		},
		addScholar: func(fullName, bio string) uint {
			return createScholar(t, db, fullName, bio)
		},
	}
}

func TestGeneralSearchMergesAndTags(t *testing.T) {
	f := newSearchFixture(t)

	f.addUser("Gazali", "Sever", "gazalisever", "gs@example.com")
	f.addScholar("İmam Gazali", "Kelam alimi")

	resp, err := f.svc.GeneralSearch(context.Background(), "Gazali", domain.SearchTypeAll, 10, 0, 0)
	if err != nil {
		t.Fatalf("general search: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 merged results, got %d", len(resp.Results))
	}
	if resp.TotalCount != 2 {
		t.Errorf("expected totalCount 2, got %d", resp.TotalCount)
	}
	if resp.SearchQuery != "Gazali" {
		t.Errorf("unexpected searchQuery %q", resp.SearchQuery)
	}

	types := map[string]int{}
	for _, item := range resp.Results {
		types[item.Type]++
		if item.Type != domain.ResultTypeUser && item.Type != domain.ResultTypeScholar {
			t.Errorf("unexpected type tag %q", item.Type)
		}
		if item.FullName == "" {
			t.Errorf("missing fullName on %+v", item)
		}
	}
	if types[domain.ResultTypeUser] != 1 || types[domain.ResultTypeScholar] != 1 {
		t.Errorf("unexpected type distribution: %v", types)
	}
}

func TestGeneralSearchRespectsLimit(t *testing.T) {
	f := newSearchFixture(t)

	for i := 0; i < 6; i++ {
		suffix := string(rune('a' + i))
		f.addUser("Ortak", "Soyad", "ortak"+suffix, "ortak"+suffix+"@example.com")
		f.addScholar("Ortak Alim "+suffix, "")
	}

	resp, err := f.svc.GeneralSearch(context.Background(), "Ortak", domain.SearchTypeAll, 4, 0, 0)
	if err != nil {
		t.Fatalf("general search: %v", err)
	}
	if len(resp.Results) > 4 {
		t.Errorf("page exceeds limit: %d", len(resp.Results))
	}
	if resp.TotalCount != 12 {
		t.Errorf("expected totalCount 12, got %d", resp.TotalCount)
	}
	if !resp.HasMore {
		t.Error("expected hasMore with 12 total and limit 4")
	}
}

func TestGeneralSearchUsesCache(t *testing.T) {
	f := newSearchFixture(t)

	f.addUser("Tek", "Kisi", "tekkisi", "tek@example.com")

	first, err := f.svc.GeneralSearch(context.Background(), "Tek", domain.SearchTypeAll, 10, 0, 0)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	if f.cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", f.cache.sets)
	}

	// A second identical call is served from the cache.
	f.addUser("Tek", "Daha", "tekdaha", "tekdaha@example.com")
	second, err := f.svc.GeneralSearch(context.Background(), "Tek", domain.SearchTypeAll, 10, 0, 0)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if f.cache.sets != 1 {
		t.Errorf("expected no further cache writes, got %d", f.cache.sets)
	}
	if second.TotalCount != first.TotalCount {
		t.Errorf("cached response changed: %d vs %d", second.TotalCount, first.TotalCount)
	}
}

func TestGeneralSearchAnnotatesFollowedScholars(t *testing.T) {
	f := newSearchFixture(t)

	me := f.addUser("Ben", "Kendim", "benkendim", "ben@example.com")
	followed := f.addScholar("Meşhur Alim", "")
	f.addScholar("Meşhur Diğer", "")

	if err := f.follows.FollowScholar(context.Background(), me, followed); err != nil {
		t.Fatalf("follow scholar: %v", err)
	}

	resp, err := f.svc.GeneralSearch(context.Background(), "Meşhur", domain.SearchTypeAll, 10, 0, me)
	if err != nil {
		t.Fatalf("general search: %v", err)
	}

	seen := 0
	for _, item := range resp.Results {
		if item.Type != domain.ResultTypeScholar {
			continue
		}
		seen++
		if item.IsFollowed == nil {
			t.Fatalf("scholar %d missing isFollowed", item.ID)
		}
		if item.ID == followed && !*item.IsFollowed {
			t.Error("followed scholar not annotated")
		}
		if item.ID != followed && *item.IsFollowed {
			t.Error("unfollowed scholar annotated as followed")
		}
	}
	if seen != 2 {
		t.Errorf("expected 2 scholar results, got %d", seen)
	}
}

func TestGeneralSearchSingleTypeKeepsTaggedEnvelope(t *testing.T) {
	f := newSearchFixture(t)

	for i := 0; i < 8; i++ {
		suffix := string(rune('a' + i))
		f.addUser("Yunus", "Soyad", "yunus"+suffix, "yunus"+suffix+"@example.com")
	}
	f.addScholar("Yunus Emre", "")
	f.addScholar("Yunus Diğer", "")

	users, err := f.svc.GeneralSearch(context.Background(), "Yunus", domain.SearchTypeUsers, 10, 0, 0)
	if err != nil {
		t.Fatalf("user-typed search: %v", err)
	}
	for _, item := range users.Results {
		if item.Type != domain.ResultTypeUser {
			t.Errorf("expected only user items, got type %q", item.Type)
		}
	}
	// Each type gets half the page even when it is the only type requested.
	if len(users.Results) != 5 {
		t.Errorf("expected 5 results with limit 10, got %d", len(users.Results))
	}
	if users.TotalCount != 8 {
		t.Errorf("expected totalCount 8, got %d", users.TotalCount)
	}

	scholars, err := f.svc.GeneralSearch(context.Background(), "Yunus", domain.SearchTypeScholars, 10, 0, 0)
	if err != nil {
		t.Fatalf("scholar-typed search: %v", err)
	}
	for _, item := range scholars.Results {
		if item.Type != domain.ResultTypeScholar {
			t.Errorf("expected only scholar items, got type %q", item.Type)
		}
	}
	if len(scholars.Results) != 2 || scholars.TotalCount != 2 {
		t.Errorf("unexpected scholar page: %d results, totalCount %d",
			len(scholars.Results), scholars.TotalCount)
	}
}

func TestGeneralSearchCachesPerType(t *testing.T) {
	f := newSearchFixture(t)

	f.addUser("Musa", "Kazim", "musakazim", "musa@example.com")
	f.addScholar("Musa Carullah", "")

	if _, err := f.svc.GeneralSearch(context.Background(), "Musa", domain.SearchTypeAll, 10, 0, 0); err != nil {
		t.Fatalf("all search: %v", err)
	}
	users, err := f.svc.GeneralSearch(context.Background(), "Musa", domain.SearchTypeUsers, 10, 0, 0)
	if err != nil {
		t.Fatalf("user-typed search: %v", err)
	}
	if f.cache.sets != 2 {
		t.Errorf("expected a cache entry per type, got %d writes", f.cache.sets)
	}
	if users.TotalCount != 1 {
		t.Errorf("typed search served the merged page: totalCount %d", users.TotalCount)
	}
}

func TestGeneralSearchSurvivesCallerCancellation(t *testing.T) {
	f := newSearchFixture(t)

	f.addUser("Sabit", "Kalan", "sabitkalan", "sabit@example.com")

	// The collapsed execution is shared, so a cancelled caller context must
	// not fail the lookup itself.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := f.svc.GeneralSearch(ctx, "Sabit", domain.SearchTypeAll, 10, 0, 0)
	if err != nil {
		t.Fatalf("search with cancelled caller: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(resp.Results))
	}
}

func TestSearchUsersExcludesRequester(t *testing.T) {
	f := newSearchFixture(t)

	me := f.addUser("Ahmet", "Ben", "ahmetben", "ben@example.com")
	f.addUser("Ahmet", "Baska", "ahmetbaska", "baska@example.com")

	resp, err := f.svc.SearchUsers(context.Background(), "Ahmet", 10, 0, me)
	if err != nil {
		t.Fatalf("search users: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Username != "ahmetbaska" {
		t.Fatalf("expected requester excluded, got %+v", resp.Results)
	}
	if resp.TotalCount != 1 {
		t.Errorf("expected totalCount 1, got %d", resp.TotalCount)
	}
	if resp.HasMore {
		t.Error("expected hasMore false")
	}
}

func TestSearchLimitNormalization(t *testing.T) {
	limit, offset := normalizePage(0, -5)
	if limit != defaultSearchLimit || offset != 0 {
		t.Errorf("unexpected normalization: limit=%d offset=%d", limit, offset)
	}
	limit, _ = normalizePage(1000, 0)
	if limit != maxSearchLimit {
		t.Errorf("expected limit capped at %d, got %d", maxSearchLimit, limit)
	}
}
