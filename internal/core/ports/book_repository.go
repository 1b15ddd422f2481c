package ports

import (
	"context"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
)

// ListBooksFilter carries the query parameters for listing the catalogue.
type ListBooksFilter struct {
	Genre     string // optional: exact match on genre
	Search    string // optional: full-text search on title/author/summary
	Year      int    // optional: publication year, 0 = no filter
	Available *bool  // optional: availability flag, nil = no filter
	Page      int    // 1-based
	Limit     int    // rows per page, capped at 100 by the service
}

// BookRepository defines persistence for catalogue entries.
type BookRepository interface {
	// Create inserts a new book. A uniqueness violation on the ISBN is
	// returned as domain.ErrDuplicateISBN.
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	// Update replaces the mutable fields of the book with the given id and
	// returns the updated document. A nil Available keeps the stored flag.
	// Unknown ids return domain.ErrBookNotFound; an ISBN collision returns
	// domain.ErrDuplicateISBN.
	Update(ctx context.Context, id string, in BookInput) (*domain.Book, error)
	// Delete removes the book. Unknown ids return domain.ErrBookNotFound.
	Delete(ctx context.Context, id string) error
	// List returns a page of books matching filter, newest first, plus the
	// total number of matches.
	List(ctx context.Context, filter ListBooksFilter) ([]*domain.Book, int64, error)
}
