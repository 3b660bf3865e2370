package domain

import (
	"errors"
	"time"
)

// SharedRefType discriminates the entity kind a post shares.
type SharedRefType string

const (
	SharedNone    SharedRefType = ""
	SharedUser    SharedRefType = "user"
	SharedScholar SharedRefType = "scholar"
	SharedBook    SharedRefType = "book"
	SharedArticle SharedRefType = "article"
)

var ErrInvalidSharedType = errors.New("invalid shared reference type")

// SharedRef is a tagged reference from a post to another entity. There is no
// foreign key behind it; resolution happens through an explicit dispatcher.
type SharedRef struct {
	Type SharedRefType `json:"type"`
	ID   uint          `json:"id"`
}

// IsZero reports whether the post shares nothing.
func (r SharedRef) IsZero() bool {
	return r.Type == SharedNone || r.ID == 0
}

// ParseSharedRef validates a raw type+id pair into a SharedRef.
func ParseSharedRef(rawType string, id uint) (SharedRef, error) {
	switch SharedRefType(rawType) {
	case SharedNone:
		return SharedRef{}, nil
	case SharedUser, SharedScholar, SharedBook, SharedArticle:
		if id == 0 {
			return SharedRef{}, ErrInvalidSharedType
		}
		return SharedRef{Type: SharedRefType(rawType), ID: id}, nil
	default:
		return SharedRef{}, ErrInvalidSharedType
	}
}

// CreatePostRequest is the multipart form body of POST /user-posts.
// The file part, when present, is routed to image or video by extension.
type CreatePostRequest struct {
	Type       string `form:"type"`
	Title      string `form:"title"`
	Content    string `form:"content" binding:"required"`
	SharedType string `form:"shared_type"`
	SharedID   uint   `form:"shared_id"`
}

// UpdatePostRequest is the body of PUT /user-posts/:id.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostResponse is the post projection returned by the API.
type PostResponse struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"userId"`
	Type      string     `json:"type,omitempty"`
	Title     string     `json:"title,omitempty"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	VideoURL  string     `json:"videoUrl,omitempty"`
	Shared    *SharedRef `json:"shared,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToResponse converts a post model to its API projection.
func (m *UserPostModel) ToResponse() PostResponse {
	resp := PostResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		Title:     m.Title,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		VideoURL:  m.VideoURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.SharedType != "" && m.SharedID != 0 {
		resp.Shared = &SharedRef{Type: SharedRefType(m.SharedType), ID: m.SharedID}
	}
	return resp
}

// SharedRefData is the resolved form of a shared reference; exactly one of
// the entity fields is populated according to Type.
type SharedRefData struct {
	Type    SharedRefType    `json:"type"`
	User    *UserResponse    `json:"user,omitempty"`
	Scholar *ScholarResponse `json:"scholar,omitempty"`
	Book    *BookResponse    `json:"book,omitempty"`
	Article *ArticleResponse `json:"article,omitempty"`
}
