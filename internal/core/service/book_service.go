package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// BookService implements catalogue use cases. Reads are public; every
// mutation is gated on the access policy.
type BookService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, logger: logger}
}

// List returns a page of the catalogue.
func (s *BookService) List(ctx context.Context, in ports.ListBooksInput) (*ports.ListBooksResult, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	books, total, err := s.repo.List(ctx, ports.ListBooksFilter{
		Genre:     in.Genre,
		Search:    in.Search,
		Year:      in.Year,
		Available: in.Available,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListBooksResult{
		Items:      books,
		Pagination: paginate(page, limit, total),
	}, nil
}

// Get returns a single book by id.
func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Create adds a catalogue entry. Admin only.
func (s *BookService) Create(ctx context.Context, actor *domain.User, in ports.BookInput) (*domain.Book, error) {
	if !domain.CanCreateBook(actor) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	book := bookFromInput(in)
	book.Available = true
	if in.Available != nil {
		book.Available = *in.Available
	}
	book.CreatedAt = now
	book.UpdatedAt = now

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("book_id", created.ID).Str("isbn", created.ISBN).Msg("book created")
	return created, nil
}

// Update replaces the mutable fields of a book. Admin only. An omitted
// availability flag keeps the stored one.
func (s *BookService) Update(ctx context.Context, actor *domain.User, id string, in ports.BookInput) (*domain.Book, error) {
	if !domain.CanModifyBook(actor) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.Update(ctx, id, trimBookInput(in))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("book_id", id).Msg("book updated")
	return updated, nil
}

// Delete removes a book from the catalogue. Admin only.
func (s *BookService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !domain.CanModifyBook(actor) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

func bookFromInput(in ports.BookInput) *domain.Book {
	in = trimBookInput(in)
	return &domain.Book{
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		Genre:           in.Genre,
		PublicationYear: in.PublicationYear,
		Publisher:       in.Publisher,
		Pages:           in.Pages,
		Summary:         in.Summary,
	}
}

func trimBookInput(in ports.BookInput) ports.BookInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Publisher = strings.TrimSpace(in.Publisher)
	return in
}

// normalizePage clamps pagination parameters: page >= 1, 1 <= limit <= 100.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// paginate computes the page window; pages is ceil(total/limit).
func paginate(page, limit int, total int64) ports.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return ports.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
