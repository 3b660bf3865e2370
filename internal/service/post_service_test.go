package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
)

func newPostFixture(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewPostService(
		repository.NewGormPostRepository(db),
		repository.NewGormUserRepository(db),
		repository.NewGormScholarRepository(db),
		repository.NewGormBookRepository(db),
		repository.NewGormArticleRepository(db),
		testRecorder(),
	)
	return svc, db
}

func TestCreatePostWithSharedBook(t *testing.T) {
	svc, db := newPostFixture(t)
	author := createUser(t, db, "Yazar", "Bir", "yazarbir", "yazar@example.com", true)
	scholar := createScholar(t, db, "Alim", "")

	book := domain.BookModel{Title: "Kitap", ScholarID: scholar, LanguageCode: "tr"}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("create book: %v", err)
	}

	post, err := svc.Create(context.Background(), author, &domain.CreatePostRequest{
		Content:    "güzel kitap",
		SharedType: "book",
		SharedID:   book.ID,
	}, "", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Shared == nil || post.Shared.Type != domain.SharedBook || post.Shared.ID != book.ID {
		t.Fatalf("shared ref not carried: %+v", post.Shared)
	}
}

func TestCreatePostRejectsDanglingSharedRef(t *testing.T) {
	svc, db := newPostFixture(t)
	author := createUser(t, db, "Yazar", "Bir", "yazarbir", "yazar@example.com", true)

	_, err := svc.Create(context.Background(), author, &domain.CreatePostRequest{
		Content:    "olmayan kitap",
		SharedType: "book",
		SharedID:   9999,
	}, "", "")
	if !errors.Is(err, repository.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}

	_, err = svc.Create(context.Background(), author, &domain.CreatePostRequest{
		Content:    "geçersiz tür",
		SharedType: "galaxy",
		SharedID:   1,
	}, "", "")
	if !errors.Is(err, domain.ErrInvalidSharedType) {
		t.Fatalf("expected ErrInvalidSharedType, got %v", err)
	}
}

func TestUpdatePostOwnershipCheck(t *testing.T) {
	svc, db := newPostFixture(t)
	owner := createUser(t, db, "Sahip", "Kisi", "sahipkisi", "sahip@example.com", true)
	intruder := createUser(t, db, "Baska", "Kisi", "baskakisi", "baska@example.com", true)

	post, err := svc.Create(context.Background(), owner, &domain.CreatePostRequest{Content: "orijinal"}, "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newContent := "değişti"
	_, err = svc.Update(context.Background(), intruder, post.ID, &domain.UpdatePostRequest{Content: &newContent})
	if !errors.Is(err, ErrNotPostOwner) {
		t.Fatalf("expected ErrNotPostOwner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), owner, post.ID, &domain.UpdatePostRequest{Content: &newContent})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Content != "değişti" {
		t.Errorf("update not applied: %q", updated.Content)
	}
}

func TestDeletePostAdminOverride(t *testing.T) {
	svc, db := newPostFixture(t)
	owner := createUser(t, db, "Sahip", "Kisi", "sahipkisi", "sahip@example.com", true)
	admin := createUser(t, db, "Yonetici", "Kisi", "yonetici", "admin@example.com", true)

	post, err := svc.Create(context.Background(), owner, &domain.CreatePostRequest{Content: "silinecek"}, "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), admin, domain.RoleUser, post.ID); !errors.Is(err, ErrNotPostOwner) {
		t.Fatalf("expected ErrNotPostOwner for plain user, got %v", err)
	}
	if err := svc.Delete(context.Background(), admin, domain.RoleAdmin, post.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, repository.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func TestSharedProfileResolution(t *testing.T) {
	svc, db := newPostFixture(t)
	user := createUser(t, db, "Profil", "Sahibi", "profilsahibi", "profil@example.com", true)
	scholar := createScholar(t, db, "Çözümlenen Alim", "")

	data, err := svc.SharedProfile(context.Background(), "user", user)
	if err != nil {
		t.Fatalf("resolve user: %v", err)
	}
	if data.User == nil || data.User.ID != user {
		t.Fatalf("user not resolved: %+v", data)
	}

	data, err = svc.SharedProfile(context.Background(), "scholar", scholar)
	if err != nil {
		t.Fatalf("resolve scholar: %v", err)
	}
	if data.Scholar == nil || data.Scholar.ID != scholar {
		t.Fatalf("scholar not resolved: %+v", data)
	}

	if _, err := svc.SharedProfile(context.Background(), "", 0); !errors.Is(err, domain.ErrInvalidSharedType) {
		t.Fatalf("expected ErrInvalidSharedType for empty ref, got %v", err)
	}
}
