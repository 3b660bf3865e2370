package domain

import (
	"time"
)

// Role values for UserModel.Role.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// UserModel is the GORM model for the users table. Accounts are governed by
// IsActive; rows are never hard-deleted.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:user"`
	IsActive     bool      `gorm:"not null;default:true"`
	PhotoURL     string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

// ScholarModel is the GORM model for the scholars table. Scholars are
// biographical records, independent of platform users; they relate to users
// through follow edges only.
type ScholarModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	FullName     string    `gorm:"type:varchar(255);not null;index"`
	Biography    string    `gorm:"type:text"`
	BirthDate    string    `gorm:"type:varchar(100)"`
	DeathDate    string    `gorm:"type:varchar(100)"`
	LocationName string    `gorm:"type:varchar(255)"`
	Latitude     *float64  `gorm:"type:decimal(10,7)"`
	Longitude    *float64  `gorm:"type:decimal(10,7)"`
	PhotoURL     string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ScholarModel) TableName() string { return "scholars" }

// UserFollowModel is a directed user→user follow edge.
// The composite unique index forbids duplicate edges per ordered pair.
type UserFollowModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	FollowerID  uint      `gorm:"column:follower_id;not null;uniqueIndex:idx_user_follow_edge"`
	FollowingID uint      `gorm:"column:following_id;not null;uniqueIndex:idx_user_follow_edge"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (UserFollowModel) TableName() string { return "user_follows" }

// UserScholarFollowModel is a directed user→scholar follow edge.
type UserScholarFollowModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_scholar_follow_edge"`
	ScholarID uint      `gorm:"column:scholar_id;not null;uniqueIndex:idx_scholar_follow_edge"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserScholarFollowModel) TableName() string { return "user_scholar_follows" }

// UserPostModel is the GORM model for user posts. A post carries either an
// image or a video URL, decided by the uploaded file kind. SharedType and
// SharedID form the tagged shared reference; there is no foreign key behind
// it, integrity is advisory only.
type UserPostModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	UserID     uint      `gorm:"column:user_id;not null;index"`
	Type       string    `gorm:"type:varchar(50)"`
	Title      string    `gorm:"type:varchar(255)"`
	Content    string    `gorm:"type:text;not null"`
	ImageURL   string    `gorm:"type:varchar(500)"`
	VideoURL   string    `gorm:"type:varchar(500)"`
	SharedType string    `gorm:"type:varchar(20);not null;default:''"`
	SharedID   uint      `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (UserPostModel) TableName() string { return "user_posts" }

// BookModel is the GORM model for books authored by scholars.
type BookModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(255);not null;index"`
	ScholarID    uint      `gorm:"column:scholar_id;index"`
	Description  string    `gorm:"type:text"`
	LanguageCode string    `gorm:"type:varchar(10);index"`
	CoverURL     string    `gorm:"type:varchar(500)"`
	PdfURL       string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (BookModel) TableName() string { return "books" }

// ArticleModel is the GORM model for articles written by users.
type ArticleModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	UserID    uint      `gorm:"column:user_id;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ArticleModel) TableName() string { return "articles" }

// LanguageModel is the static language reference table, seeded at startup.
type LanguageModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Code     string `gorm:"type:varchar(10);uniqueIndex;not null"`
	Name     string `gorm:"type:varchar(100);not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (LanguageModel) TableName() string { return "languages" }

// AllModels lists every model for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&ScholarModel{},
		&UserFollowModel{},
		&UserScholarFollowModel{},
		&UserPostModel{},
		&BookModel{},
		&ArticleModel{},
		&LanguageModel{},
	}
}
