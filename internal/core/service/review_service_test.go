package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

type stubReviewRepo struct {
	reviews []*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{}
}

func cloneReview(rv *domain.Review) *domain.Review {
	if rv == nil {
		return nil
	}
	clone := *rv
	return &clone
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	for _, rv := range r.reviews {
		if rv.BookID == review.BookID && rv.UserID == review.UserID {
			return nil, domain.ErrDuplicateReview
		}
	}
	r.nextID++
	created := cloneReview(review)
	created.ID = fmt.Sprintf("review_%d", r.nextID)
	r.reviews = append(r.reviews, cloneReview(created))
	return created, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id {
			return cloneReview(rv), nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) Update(_ context.Context, id string, rating int, comment string) (*domain.Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id {
			rv.Rating = rating
			rv.Comment = comment
			return cloneReview(rv), nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) DeleteByID(_ context.Context, id string) error {
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return domain.ErrReviewNotFound
}

func (r *stubReviewRepo) DeleteOwned(_ context.Context, id, ownerID string) error {
	for i, rv := range r.reviews {
		if rv.ID == id && rv.UserID == ownerID {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return domain.ErrReviewNotFound
}

func (r *stubReviewRepo) ListByBook(_ context.Context, bookID string, page, limit int) ([]*domain.Review, int64, error) {
	var matched []*domain.Review
	for _, rv := range r.reviews {
		if rv.BookID == bookID {
			matched = append(matched, cloneReview(rv))
		}
	}
	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubReviewRepo) get(id string) *domain.Review {
	for _, rv := range r.reviews {
		if rv.ID == id {
			return rv
		}
	}
	return nil
}

func seedUser(repo *stubUserRepo, id, name, email string) *domain.User {
	u := &domain.User{ID: id, Name: name, Email: email, Role: domain.RoleUser}
	repo.byEmail[email] = cloneUser(u)
	return u
}

func newTestReviewService(t *testing.T) (*ReviewService, *stubReviewRepo, *stubUserRepo, *domain.Book) {
	t.Helper()

	reviews := newStubReviewRepo()
	books := newStubBookRepo()
	users := newStubUserRepo()

	book, err := books.Create(context.Background(), &domain.Book{Title: "Dune", ISBN: "978-0441013593"})
	if err != nil {
		t.Fatalf("seeding book: %v", err)
	}

	svc := NewReviewService(reviews, books, users, zerolog.Nop())
	return svc, reviews, users, book
}

func TestReviewService_Create_OnePerUserPerBook(t *testing.T) {
	svc, _, users, book := newTestReviewService(t)
	alice := seedUser(users, "user_a", "Alice", "alice@example.com")
	bob := seedUser(users, "user_b", "Bob", "bob@example.com")

	created, err := svc.Create(context.Background(), alice, book.ID, ports.ReviewInput{Rating: 5, Comment: "superbe"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Review.UserID != alice.ID || created.Review.BookID != book.ID {
		t.Fatalf("unexpected ownership: %+v", created.Review)
	}
	if created.Author.Name != "Alice" {
		t.Fatalf("author = %+v, want Alice", created.Author)
	}

	_, err = svc.Create(context.Background(), alice, book.ID, ports.ReviewInput{Rating: 3, Comment: "encore"})
	if !errors.Is(err, domain.ErrDuplicateReview) {
		t.Fatalf("second review by same user: err = %v, want ErrDuplicateReview", err)
	}

	if _, err := svc.Create(context.Background(), bob, book.ID, ports.ReviewInput{Rating: 4, Comment: "pas mal"}); err != nil {
		t.Fatalf("review by a different user should succeed: %v", err)
	}
}

func TestReviewService_Create_UnknownBook(t *testing.T) {
	svc, _, users, _ := newTestReviewService(t)
	alice := seedUser(users, "user_a", "Alice", "alice@example.com")

	_, err := svc.Create(context.Background(), alice, "missing", ports.ReviewInput{Rating: 5, Comment: "x"})
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("err = %v, want ErrBookNotFound", err)
	}
}

func TestReviewService_Update_OwnerOnly(t *testing.T) {
	svc, reviews, users, book := newTestReviewService(t)
	alice := seedUser(users, "user_a", "Alice", "alice@example.com")
	bob := seedUser(users, "user_b", "Bob", "bob@example.com")
	admin := &domain.User{ID: "admin_1", Name: "Root", Role: domain.RoleAdmin}

	created, err := svc.Create(context.Background(), alice, book.ID, ports.ReviewInput{Rating: 2, Comment: "bof"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	id := created.Review.ID

	// Someone else's review reads as absent, and stays untouched.
	if _, err := svc.Update(context.Background(), bob, id, ports.ReviewInput{Rating: 1, Comment: "hack"}); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("non-owner update: err = %v, want ErrReviewNotFound", err)
	}
	// Admins get no bypass on update.
	if _, err := svc.Update(context.Background(), admin, id, ports.ReviewInput{Rating: 1, Comment: "hack"}); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("admin update of foreign review: err = %v, want ErrReviewNotFound", err)
	}
	if stored := reviews.get(id); stored.Rating != 2 || stored.Comment != "bof" {
		t.Fatalf("review mutated by rejected update: %+v", stored)
	}

	updated, err := svc.Update(context.Background(), alice, id, ports.ReviewInput{Rating: 4, Comment: "mieux"})
	if err != nil {
		t.Fatalf("owner update returned error: %v", err)
	}
	if updated.Review.Rating != 4 || updated.Review.Comment != "mieux" {
		t.Fatalf("updated review = %+v", updated.Review)
	}

	if _, err := svc.Update(context.Background(), alice, "missing", ports.ReviewInput{Rating: 1, Comment: "x"}); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("unknown id: err = %v, want ErrReviewNotFound", err)
	}
}

func TestReviewService_Delete_OwnerOrAdmin(t *testing.T) {
	svc, reviews, users, book := newTestReviewService(t)
	alice := seedUser(users, "user_a", "Alice", "alice@example.com")
	bob := seedUser(users, "user_b", "Bob", "bob@example.com")
	admin := &domain.User{ID: "admin_1", Name: "Root", Role: domain.RoleAdmin}

	first, err := svc.Create(context.Background(), alice, book.ID, ports.ReviewInput{Rating: 5, Comment: "a"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := svc.Create(context.Background(), bob, book.ID, ports.ReviewInput{Rating: 3, Comment: "b"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), bob, first.Review.ID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("non-owner delete: err = %v, want ErrReviewNotFound", err)
	}
	if reviews.get(first.Review.ID) == nil {
		t.Fatal("review removed by rejected delete")
	}

	if err := svc.Delete(context.Background(), alice, first.Review.ID); err != nil {
		t.Fatalf("owner delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), alice, first.Review.ID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("repeated delete: err = %v, want ErrReviewNotFound", err)
	}

	// Admins delete anyone's review.
	if err := svc.Delete(context.Background(), admin, second.Review.ID); err != nil {
		t.Fatalf("admin delete returned error: %v", err)
	}
	if reviews.get(second.Review.ID) != nil {
		t.Fatal("admin delete left the review behind")
	}
}

// The delete path enforces ownership through two query shapes rather than
// calling CanDeleteReview; this pins the two to the same truth table.
func TestReviewService_Delete_AgreesWithPolicy(t *testing.T) {
	owner := &domain.User{ID: "user_a", Name: "Alice", Role: domain.RoleUser}
	other := &domain.User{ID: "user_b", Name: "Bob", Role: domain.RoleUser}
	admin := &domain.User{ID: "admin_1", Name: "Root", Role: domain.RoleAdmin}

	for _, actor := range []*domain.User{owner, other, admin} {
		svc, _, users, book := newTestReviewService(t)
		seedUser(users, owner.ID, owner.Name, "alice@example.com")

		created, err := svc.Create(context.Background(), owner, book.ID, ports.ReviewInput{Rating: 4, Comment: "x"})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		allowed := domain.CanDeleteReview(actor, created.Review)
		err = svc.Delete(context.Background(), actor, created.Review.ID)
		if allowed && err != nil {
			t.Fatalf("actor %s: policy allows delete but service returned %v", actor.ID, err)
		}
		if !allowed && !errors.Is(err, domain.ErrReviewNotFound) {
			t.Fatalf("actor %s: policy denies delete but service returned %v", actor.ID, err)
		}
	}
}

func TestReviewService_ListByBook_JoinsAuthors(t *testing.T) {
	svc, _, users, book := newTestReviewService(t)
	alice := seedUser(users, "user_a", "Alice", "alice@example.com")
	bob := seedUser(users, "user_b", "Bob", "bob@example.com")

	if _, err := svc.Create(context.Background(), alice, book.ID, ports.ReviewInput{Rating: 5, Comment: "a"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), bob, book.ID, ports.ReviewInput{Rating: 3, Comment: "b"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	result, err := svc.ListByBook(context.Background(), book.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListByBook returned error: %v", err)
	}
	if len(result.Items) != 2 || result.Pagination.Total != 2 {
		t.Fatalf("items = %d, total = %d", len(result.Items), result.Pagination.Total)
	}

	byUser := make(map[string]ports.ReviewAuthor)
	for _, item := range result.Items {
		byUser[item.Review.UserID] = item.Author
	}
	if byUser[alice.ID].Name != "Alice" || byUser[bob.ID].Email != "bob@example.com" {
		t.Fatalf("authors not joined: %+v", byUser)
	}
}

func TestReviewService_ListByBook_Empty(t *testing.T) {
	svc, _, _, book := newTestReviewService(t)

	result, err := svc.ListByBook(context.Background(), book.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListByBook returned error: %v", err)
	}
	if len(result.Items) != 0 || result.Pagination.Total != 0 {
		t.Fatalf("expected empty page, got %+v", result)
	}
}
