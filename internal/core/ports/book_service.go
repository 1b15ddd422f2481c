package ports

import (
	"context"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
)

// Pagination describes the page window of a list response.
type Pagination struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

// BookInput carries the mutable fields of a catalogue entry.
type BookInput struct {
	Title           string
	Author          string
	ISBN            string
	Genre           string
	PublicationYear int
	Publisher       string
	Pages           int
	Summary         string
	Available       *bool // nil = keep default (true on create)
}

// ListBooksInput carries the list endpoint parameters before normalization.
type ListBooksInput struct {
	Genre     string
	Search    string
	Year      int
	Available *bool
	Page      int
	Limit     int
}

// ListBooksResult is returned by List.
type ListBooksResult struct {
	Items      []*domain.Book
	Pagination Pagination
}

// BookService defines use-case operations on the catalogue. Mutations take
// the resolved actor so the access policy can be applied.
type BookService interface {
	List(ctx context.Context, in ListBooksInput) (*ListBooksResult, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, actor *domain.User, in BookInput) (*domain.Book, error)
	Update(ctx context.Context, actor *domain.User, id string, in BookInput) (*domain.Book, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
