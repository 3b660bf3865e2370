package service

import (
	"context"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
)

// LibraryService exposes the scholar, book and language catalogs.
type LibraryService struct {
	scholars  repository.ScholarRepository
	books     repository.BookRepository
	languages repository.LanguageRepository
	follows   repository.FollowRepository
}

// NewLibraryService creates a new library service.
func NewLibraryService(
	scholars repository.ScholarRepository,
	books repository.BookRepository,
	languages repository.LanguageRepository,
	follows repository.FollowRepository,
) *LibraryService {
	return &LibraryService{
		scholars:  scholars,
		books:     books,
		languages: languages,
		follows:   follows,
	}
}

// ListScholars returns a scholar page. When the requester is known each
// entry carries whether the requester follows that scholar.
func (s *LibraryService) ListScholars(ctx context.Context, limit, offset int, requesterID uint) ([]domain.ScholarResponse, int64, error) {
	limit, offset = normalizePage(limit, offset)
	scholars, total, err := s.scholars.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.ScholarResponse, 0, len(scholars))
	for i := range scholars {
		responses = append(responses, scholars[i].ToResponse())
	}

	if requesterID != 0 && len(responses) > 0 {
		ids := make([]uint, len(responses))
		for i, r := range responses {
			ids[i] = r.ID
		}
		followed, err := s.follows.FollowedScholarIDs(ctx, requesterID, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range responses {
			v := followed[responses[i].ID]
			responses[i].IsFollowed = &v
		}
	}

	return responses, total, nil
}

// GetScholar returns one scholar with their books.
func (s *LibraryService) GetScholar(ctx context.Context, id uint, requesterID uint) (*domain.ScholarResponse, []domain.BookResponse, error) {
	scholar, err := s.scholars.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	resp := scholar.ToResponse()

	if requesterID != 0 {
		followed, err := s.follows.FollowedScholarIDs(ctx, requesterID, []uint{id})
		if err != nil {
			return nil, nil, err
		}
		v := followed[id]
		resp.IsFollowed = &v
	}

	books, err := s.books.ListByScholar(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	bookResponses := make([]domain.BookResponse, 0, len(books))
	for i := range books {
		bookResponses = append(bookResponses, books[i].ToResponse())
	}

	return &resp, bookResponses, nil
}

// CreateScholar stores a new scholar record.
func (s *LibraryService) CreateScholar(ctx context.Context, req *domain.CreateScholarRequest) (*domain.ScholarResponse, error) {
	scholar := &domain.ScholarModel{
		FullName:     req.FullName,
		Biography:    req.Biography,
		BirthDate:    req.BirthDate,
		DeathDate:    req.DeathDate,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PhotoURL:     req.PhotoURL,
	}
	if err := s.scholars.Create(ctx, scholar); err != nil {
		return nil, err
	}
	resp := scholar.ToResponse()
	return &resp, nil
}

// ListBooks returns a book page with the total count.
func (s *LibraryService) ListBooks(ctx context.Context, limit, offset int) ([]domain.BookResponse, int64, error) {
	limit, offset = normalizePage(limit, offset)
	books, total, err := s.books.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]domain.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, books[i].ToResponse())
	}
	return responses, total, nil
}

// GetBook returns one book.
func (s *LibraryService) GetBook(ctx context.Context, id uint) (*domain.BookResponse, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := book.ToResponse()
	return &resp, nil
}

// CreateBook stores a new book. The authoring scholar, when given, must
// exist. Cover and PDF URLs come from prior uploads.
func (s *LibraryService) CreateBook(ctx context.Context, req *domain.CreateBookRequest, coverURL, pdfURL string) (*domain.BookResponse, error) {
	if req.ScholarID != 0 {
		if _, err := s.scholars.GetByID(ctx, req.ScholarID); err != nil {
			return nil, err
		}
	}

	book := &domain.BookModel{
		Title:        req.Title,
		ScholarID:    req.ScholarID,
		Description:  req.Description,
		LanguageCode: req.LanguageCode,
		CoverURL:     coverURL,
		PdfURL:       pdfURL,
	}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	resp := book.ToResponse()
	return &resp, nil
}

// ListLanguages returns the active language reference entries.
func (s *LibraryService) ListLanguages(ctx context.Context) ([]domain.LanguageResponse, error) {
	languages, err := s.languages.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.LanguageResponse, 0, len(languages))
	for _, l := range languages {
		responses = append(responses, domain.LanguageResponse{
			ID:       l.ID,
			Code:     l.Code,
			Name:     l.Name,
			IsActive: l.IsActive,
		})
	}
	return responses, nil
}
