package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// newTestDB opens a named in-memory sqlite database. The single-connection
// pool keeps every query on the same shared-cache database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(domain.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, firstName, lastName, username, email string, active bool) uint {
	t.Helper()
	user := domain.UserModel{
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: "x",
		Role:         domain.RoleUser,
		IsActive:     active,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	// Create drops zero-valued fields with a column default, so an inactive
	// seed needs the flag forced after insert.
	if !active {
		if err := db.Model(&domain.UserModel{}).Where("id = ?", user.ID).
			Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate user %s: %v", username, err)
		}
	}
	return user.ID
}

func createScholar(t *testing.T, db *gorm.DB, fullName, biography string) uint {
	t.Helper()
	scholar := domain.ScholarModel{
		FullName:  fullName,
		Biography: biography,
	}
	if err := db.Create(&scholar).Error; err != nil {
		t.Fatalf("create scholar %s: %v", fullName, err)
	}
	return scholar.ID
}

func testCtx() context.Context {
	return context.Background()
}
