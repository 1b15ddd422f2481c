package ports

import (
	"context"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
)

// ReviewInput carries the mutable fields of a review.
type ReviewInput struct {
	Rating  int
	Comment string
}

// ReviewAuthor is the public display view of a review's author.
type ReviewAuthor struct {
	ID    string
	Name  string
	Email string
}

// ReviewDetail pairs a review with its author's display fields.
type ReviewDetail struct {
	Review *domain.Review
	Author ReviewAuthor
}

// ListReviewsResult is returned by ListByBook.
type ListReviewsResult struct {
	Items      []ReviewDetail
	Pagination Pagination
}

// ReviewService defines use-case operations on reviews. All mutations are
// ownership-scoped: absent and not-owned reviews are indistinguishable to
// callers (both surface domain.ErrReviewNotFound).
type ReviewService interface {
	ListByBook(ctx context.Context, bookID string, page, limit int) (*ListReviewsResult, error)
	Create(ctx context.Context, actor *domain.User, bookID string, in ReviewInput) (*ReviewDetail, error)
	Update(ctx context.Context, actor *domain.User, id string, in ReviewInput) (*ReviewDetail, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
