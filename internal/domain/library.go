package domain

// ScholarResponse is the scholar projection returned by the API.
type ScholarResponse struct {
	ID           uint     `json:"id"`
	FullName     string   `json:"fullName"`
	Biography    string   `json:"biography,omitempty"`
	BirthDate    string   `json:"birthDate,omitempty"`
	DeathDate    string   `json:"deathDate,omitempty"`
	LocationName string   `json:"locationName,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	PhotoURL     string   `json:"photoUrl,omitempty"`
	IsFollowed   *bool    `json:"isFollowed,omitempty"`
}

// ToResponse converts a scholar model to its API projection.
func (m *ScholarModel) ToResponse() ScholarResponse {
	return ScholarResponse{
		ID:           m.ID,
		FullName:     m.FullName,
		Biography:    m.Biography,
		BirthDate:    m.BirthDate,
		DeathDate:    m.DeathDate,
		LocationName: m.LocationName,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		PhotoURL:     m.PhotoURL,
	}
}

// CreateScholarRequest is the admin body for creating or updating a scholar.
type CreateScholarRequest struct {
	FullName     string   `json:"fullName" binding:"required"`
	Biography    string   `json:"biography"`
	BirthDate    string   `json:"birthDate"`
	DeathDate    string   `json:"deathDate"`
	LocationName string   `json:"locationName"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PhotoURL     string   `json:"photoUrl"`
}

// BookResponse is the book projection returned by the API.
type BookResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	ScholarID    uint   `json:"scholarId,omitempty"`
	Description  string `json:"description,omitempty"`
	LanguageCode string `json:"languageCode,omitempty"`
	CoverURL     string `json:"coverUrl,omitempty"`
	PdfURL       string `json:"pdfUrl,omitempty"`
}

// ToResponse converts a book model to its API projection.
func (m *BookModel) ToResponse() BookResponse {
	return BookResponse{
		ID:           m.ID,
		Title:        m.Title,
		ScholarID:    m.ScholarID,
		Description:  m.Description,
		LanguageCode: m.LanguageCode,
		CoverURL:     m.CoverURL,
		PdfURL:       m.PdfURL,
	}
}

// CreateBookRequest is the admin multipart body for creating a book; cover
// and pdf files ride along as separate form parts.
type CreateBookRequest struct {
	Title        string `form:"title" binding:"required"`
	ScholarID    uint   `form:"scholar_id"`
	Description  string `form:"description"`
	LanguageCode string `form:"language_code"`
}

// ArticleResponse is the article projection returned by the API.
type ArticleResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  uint   `json:"userId,omitempty"`
}

// ToResponse converts an article model to its API projection.
func (m *ArticleModel) ToResponse() ArticleResponse {
	return ArticleResponse{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		UserID:  m.UserID,
	}
}

// LanguageResponse is a language reference entry.
type LanguageResponse struct {
	ID       uint   `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}
