package ports

import (
	"context"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
)

// ReviewRepository defines persistence for book reviews.
type ReviewRepository interface {
	// Create inserts a new review. A uniqueness violation on the
	// (book, user) pair is returned as domain.ErrDuplicateReview.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	// Update mutates rating and comment in place and returns the updated
	// review. Unknown ids return domain.ErrReviewNotFound.
	Update(ctx context.Context, id string, rating int, comment string) (*domain.Review, error)
	// DeleteByID removes a review regardless of owner (admin query shape).
	DeleteByID(ctx context.Context, id string) error
	// DeleteOwned removes a review only when it belongs to ownerID (non-admin
	// query shape). Absent and not-owned both return domain.ErrReviewNotFound.
	DeleteOwned(ctx context.Context, id, ownerID string) error
	// ListByBook returns a page of reviews for a book, newest first, plus the
	// total count.
	ListByBook(ctx context.Context, bookID string, page, limit int) ([]*domain.Review, int64, error)
}
