package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

// ReviewService implements ownership-scoped review use cases. Reviews that
// exist but belong to someone else surface exactly like absent ones, so
// callers cannot enumerate other users' review ids.
type ReviewService struct {
	reviews ports.ReviewRepository
	books   ports.BookRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	books ports.BookRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *ReviewService {
	return &ReviewService{reviews: reviews, books: books, users: users, logger: logger}
}

// ListByBook returns a page of reviews for a book, each with its author's
// display fields attached.
func (s *ReviewService) ListByBook(ctx context.Context, bookID string, page, limit int) (*ports.ListReviewsResult, error) {
	page, limit = normalizePage(page, limit)

	reviews, total, err := s.reviews.ListByBook(ctx, bookID, page, limit)
	if err != nil {
		return nil, err
	}

	authors, err := s.authorsFor(ctx, reviews)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ReviewDetail, len(reviews))
	for i, r := range reviews {
		items[i] = ports.ReviewDetail{Review: r, Author: authors[r.UserID]}
	}

	return &ports.ListReviewsResult{
		Items:      items,
		Pagination: paginate(page, limit, total),
	}, nil
}

// Create adds a review for the given book on behalf of the actor. The book
// must exist; the (book, actor) uniqueness constraint resolves concurrent
// duplicates, the loser receiving ErrDuplicateReview.
func (s *ReviewService) Create(ctx context.Context, actor *domain.User, bookID string, in ports.ReviewInput) (*ports.ReviewDetail, error) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !domain.CanCreateReview(actor, book) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	created, err := s.reviews.Create(ctx, &domain.Review{
		BookID:    book.ID,
		UserID:    actor.ID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("review_id", created.ID).Str("book_id", book.ID).Str("user_id", actor.ID).Msg("review created")
	return &ports.ReviewDetail{Review: created, Author: authorOf(actor)}, nil
}

// Update mutates the rating and comment of a review owned by the actor.
// A review that is absent or owned by someone else — admins included — fails
// with ErrReviewNotFound.
func (s *ReviewService) Update(ctx context.Context, actor *domain.User, id string, in ports.ReviewInput) (*ports.ReviewDetail, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyReview(actor, review) {
		return nil, domain.ErrReviewNotFound
	}

	updated, err := s.reviews.Update(ctx, id, in.Rating, in.Comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("review_id", id).Str("user_id", actor.ID).Msg("review updated")
	return &ports.ReviewDetail{Review: updated, Author: authorOf(actor)}, nil
}

// Delete removes a review. Admins delete by id alone; everyone else deletes
// through an ownership-filtered query. Both shapes yield identical
// success/not-found semantics.
func (s *ReviewService) Delete(ctx context.Context, actor *domain.User, id string) error {
	var err error
	if actor.IsAdmin() {
		err = s.reviews.DeleteByID(ctx, id)
	} else {
		err = s.reviews.DeleteOwned(ctx, id, actor.ID)
	}
	if err != nil {
		return err
	}

	s.logger.Info().Str("review_id", id).Str("user_id", actor.ID).Bool("admin", actor.IsAdmin()).Msg("review deleted")
	return nil
}

// authorsFor fetches the display fields of every distinct review author.
func (s *ReviewService) authorsFor(ctx context.Context, reviews []*domain.Review) (map[string]ports.ReviewAuthor, error) {
	ids := make([]string, 0, len(reviews))
	seen := make(map[string]struct{}, len(reviews))
	for _, r := range reviews {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	if len(ids) == 0 {
		return map[string]ports.ReviewAuthor{}, nil
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	authors := make(map[string]ports.ReviewAuthor, len(users))
	for id, u := range users {
		authors[id] = authorOf(u)
	}
	return authors, nil
}

func authorOf(u *domain.User) ports.ReviewAuthor {
	if u == nil {
		return ports.ReviewAuthor{}
	}
	return ports.ReviewAuthor{ID: u.ID, Name: u.Name, Email: u.Email}
}
