package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mustafayildiz-m/iw-project/internal/repository"
)

func newFollowFixture(t *testing.T) (*FollowService, func(firstName, lastName, username, email string) uint, func(fullName string) uint) {
	t.Helper()
	db := newTestDB(t)
	follows := repository.NewGormFollowRepository(db)
	users := repository.NewGormUserRepository(db)
	scholars := repository.NewGormScholarRepository(db)
	svc := NewFollowService(follows, users, scholars, testRecorder())

	addUser := func(firstName, lastName, username, email string) uint {
		return createUser(t, db, firstName, lastName, username, email, true)
	}
	addScholar := func(fullName string) uint {
		return createScholar(t, db, fullName, "")
	}
	return svc, addUser, addScholar
}

func TestFollowUserRejectsSelf(t *testing.T) {
	svc, addUser, _ := newFollowFixture(t)
	me := addUser("Ben", "Kendim", "benkendim", "ben@example.com")

	if err := svc.FollowUser(context.Background(), me, me); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
}

func TestFollowUserRequiresExistingTarget(t *testing.T) {
	svc, addUser, _ := newFollowFixture(t)
	me := addUser("Ben", "Kendim", "benkendim", "ben@example.com")

	if err := svc.FollowUser(context.Background(), me, 9999); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	svc, addUser, _ := newFollowFixture(t)
	me := addUser("Ben", "Kendim", "benkendim", "ben@example.com")
	other := addUser("Diger", "Kisi", "digerkisi", "diger@example.com")

	if err := svc.FollowUser(context.Background(), me, other); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.FollowUser(context.Background(), me, other); !errors.Is(err, repository.ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}

	following, err := svc.Following(context.Background(), me, 10, 0)
	if err != nil {
		t.Fatalf("following: %v", err)
	}
	if following.TotalCount != 1 || following.Entries[0].User.ID != other {
		t.Fatalf("unexpected listing: %+v", following)
	}

	if err := svc.UnfollowUser(context.Background(), me, other); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if err := svc.UnfollowUser(context.Background(), me, other); !errors.Is(err, repository.ErrFollowNotFound) {
		t.Fatalf("expected ErrFollowNotFound, got %v", err)
	}
}

func TestFollowScholarRequiresExistingScholar(t *testing.T) {
	svc, addUser, addScholar := newFollowFixture(t)
	me := addUser("Ben", "Kendim", "benkendim", "ben@example.com")

	if err := svc.FollowScholar(context.Background(), me, 9999); !errors.Is(err, repository.ErrScholarNotFound) {
		t.Fatalf("expected ErrScholarNotFound, got %v", err)
	}

	scholar := addScholar("İmam Gazali")
	if err := svc.FollowScholar(context.Background(), me, scholar); err != nil {
		t.Fatalf("follow scholar: %v", err)
	}
}

func TestWhoToFollowSkipsExistingEdges(t *testing.T) {
	svc, addUser, addScholar := newFollowFixture(t)
	me := addUser("Ben", "Kendim", "benkendim", "ben@example.com")
	followed := addUser("Takip", "Edilen", "takipedilen", "te@example.com")
	fresh := addUser("Yeni", "Kisi", "yenikisi", "yeni@example.com")
	scholar := addScholar("Önerilecek Alim")

	if err := svc.FollowUser(context.Background(), me, followed); err != nil {
		t.Fatalf("follow: %v", err)
	}

	resp, err := svc.WhoToFollow(context.Background(), me)
	if err != nil {
		t.Fatalf("who to follow: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].ID != fresh {
		t.Fatalf("unexpected user suggestions: %+v", resp.Users)
	}
	if len(resp.Scholars) != 1 || resp.Scholars[0].ID != scholar {
		t.Fatalf("unexpected scholar suggestions: %+v", resp.Scholars)
	}
}
