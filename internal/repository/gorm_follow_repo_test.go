package repository

import (
	"errors"
	"testing"
)

func TestFollowUserDuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormFollowRepository(db)

	a := createUser(t, db, "Bir", "Kisi", "birkisi", "bir@example.com", true)
	b := createUser(t, db, "Iki", "Kisi", "ikikisi", "iki@example.com", true)

	if err := repo.FollowUser(testCtx(), a, b); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if err := repo.FollowUser(testCtx(), a, b); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}

	// The reverse direction is a distinct edge.
	if err := repo.FollowUser(testCtx(), b, a); err != nil {
		t.Fatalf("reverse follow: %v", err)
	}
}

func TestUnfollowUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormFollowRepository(db)

	a := createUser(t, db, "Bir", "Kisi", "birkisi", "bir@example.com", true)
	b := createUser(t, db, "Iki", "Kisi", "ikikisi", "iki@example.com", true)

	if err := repo.UnfollowUser(testCtx(), a, b); !errors.Is(err, ErrFollowNotFound) {
		t.Fatalf("expected ErrFollowNotFound, got %v", err)
	}

	if err := repo.FollowUser(testCtx(), a, b); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := repo.UnfollowUser(testCtx(), a, b); err != nil {
		t.Fatalf("unfollow: %v", err)
	}

	following, err := repo.IsFollowingUser(testCtx(), a, b)
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if following {
		t.Error("edge should be gone after unfollow")
	}
}

func TestFollowersAndFollowingListings(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormFollowRepository(db)

	me := createUser(t, db, "Ben", "Kendim", "benkendim", "ben@example.com", true)
	f1 := createUser(t, db, "Takipci", "Bir", "takipcibir", "t1@example.com", true)
	f2 := createUser(t, db, "Takipci", "Iki", "takipciiki", "t2@example.com", true)
	inactive := createUser(t, db, "Pasif", "Takipci", "pasiftakipci", "p@example.com", false)

	for _, follower := range []uint{f1, f2, inactive} {
		if err := repo.FollowUser(testCtx(), follower, me); err != nil {
			t.Fatalf("follow: %v", err)
		}
	}
	if err := repo.FollowUser(testCtx(), me, f1); err != nil {
		t.Fatalf("follow out: %v", err)
	}

	followers, total, err := repo.Followers(testCtx(), me, 10, 0)
	if err != nil {
		t.Fatalf("followers: %v", err)
	}
	if total != 2 || len(followers) != 2 {
		t.Fatalf("expected 2 active followers, got total=%d len=%d", total, len(followers))
	}
	// Newest edge first.
	if followers[0].User.Username != "takipciiki" {
		t.Errorf("expected newest follower first, got %s", followers[0].User.Username)
	}
	if followers[0].FollowedAt.IsZero() {
		t.Error("expected followedAt to be populated")
	}

	following, total, err := repo.Following(testCtx(), me, 10, 0)
	if err != nil {
		t.Fatalf("following: %v", err)
	}
	if total != 1 || len(following) != 1 || following[0].User.Username != "takipcibir" {
		t.Fatalf("unexpected following listing: total=%d %+v", total, following)
	}
}

func TestFollowedScholarIDsBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormFollowRepository(db)

	me := createUser(t, db, "Ben", "Kendim", "benkendim", "ben@example.com", true)
	s1 := createScholar(t, db, "Alim Bir", "")
	s2 := createScholar(t, db, "Alim Iki", "")
	s3 := createScholar(t, db, "Alim Uc", "")

	if err := repo.FollowScholar(testCtx(), me, s1); err != nil {
		t.Fatalf("follow scholar: %v", err)
	}
	if err := repo.FollowScholar(testCtx(), me, s3); err != nil {
		t.Fatalf("follow scholar: %v", err)
	}
	if err := repo.FollowScholar(testCtx(), me, s1); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}

	followed, err := repo.FollowedScholarIDs(testCtx(), me, []uint{s1, s2, s3})
	if err != nil {
		t.Fatalf("followed scholar ids: %v", err)
	}
	if !followed[s1] || followed[s2] || !followed[s3] {
		t.Errorf("unexpected follow map: %v", followed)
	}

	empty, err := repo.FollowedScholarIDs(testCtx(), me, nil)
	if err != nil {
		t.Fatalf("empty candidates: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty map, got %v", empty)
	}
}

func TestSuggestionsExcludeFollowedAndSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormFollowRepository(db)

	me := createUser(t, db, "Ben", "Kendim", "benkendim", "ben@example.com", true)
	followed := createUser(t, db, "Takip", "Edilen", "takipedilen", "te@example.com", true)
	fresh := createUser(t, db, "Yeni", "Kisi", "yenikisi", "yk@example.com", true)
	createUser(t, db, "Pasif", "Kisi", "pasifkisi", "pk@example.com", false)

	if err := repo.FollowUser(testCtx(), me, followed); err != nil {
		t.Fatalf("follow: %v", err)
	}

	suggestions, err := repo.SuggestUsers(testCtx(), me, 10)
	if err != nil {
		t.Fatalf("suggest users: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].ID != fresh {
		t.Fatalf("expected only the fresh user, got %+v", suggestions)
	}

	s1 := createScholar(t, db, "Alim Bir", "")
	s2 := createScholar(t, db, "Alim Iki", "")
	if err := repo.FollowScholar(testCtx(), me, s1); err != nil {
		t.Fatalf("follow scholar: %v", err)
	}

	scholarSuggestions, err := repo.SuggestScholars(testCtx(), me, 10)
	if err != nil {
		t.Fatalf("suggest scholars: %v", err)
	}
	if len(scholarSuggestions) != 1 || scholarSuggestions[0].ID != s2 {
		t.Fatalf("expected only the unfollowed scholar, got %+v", scholarSuggestions)
	}
}
