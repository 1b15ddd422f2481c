package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

type stubReviewService struct {
	listFn   func(ctx context.Context, bookID string, page, limit int) (*ports.ListReviewsResult, error)
	createFn func(ctx context.Context, actor *domain.User, bookID string, in ports.ReviewInput) (*ports.ReviewDetail, error)
	updateFn func(ctx context.Context, actor *domain.User, id string, in ports.ReviewInput) (*ports.ReviewDetail, error)
	deleteFn func(ctx context.Context, actor *domain.User, id string) error
}

func (s *stubReviewService) ListByBook(ctx context.Context, bookID string, page, limit int) (*ports.ListReviewsResult, error) {
	return s.listFn(ctx, bookID, page, limit)
}

func (s *stubReviewService) Create(ctx context.Context, actor *domain.User, bookID string, in ports.ReviewInput) (*ports.ReviewDetail, error) {
	return s.createFn(ctx, actor, bookID, in)
}

func (s *stubReviewService) Update(ctx context.Context, actor *domain.User, id string, in ports.ReviewInput) (*ports.ReviewDetail, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubReviewService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func sampleDetail(owner *domain.User) *ports.ReviewDetail {
	return &ports.ReviewDetail{
		Review: &domain.Review{ID: "review_1", BookID: "book_1", UserID: owner.ID, Rating: 5, Comment: "superbe"},
		Author: ports.ReviewAuthor{ID: owner.ID, Name: owner.Name, Email: owner.Email},
	}
}

func TestReviewHandler_Create_Success(t *testing.T) {
	alice := &domain.User{ID: "user_1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	stub := &stubReviewService{
		createFn: func(_ context.Context, actor *domain.User, bookID string, in ports.ReviewInput) (*ports.ReviewDetail, error) {
			if actor.ID != alice.ID || bookID != "book_1" || in.Rating != 5 {
				t.Fatalf("unexpected args: %s %s %+v", actor.ID, bookID, in)
			}
			return sampleDetail(alice), nil
		},
	}
	handler := NewReviewHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/reviews/book/book_1",
		`{"rating":5,"comment":"superbe"}`)
	c.SetParamNames("bookId")
	c.SetParamValues("book_1")
	setActor(c, alice)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	data, _ := decodeEnvelope(t, rec)["data"].(map[string]any)
	review, _ := data["review"].(map[string]any)
	user, _ := review["user"].(map[string]any)
	if review["id"] != "review_1" || user["name"] != "Alice" {
		t.Fatalf("unexpected review payload: %+v", review)
	}
}

func TestReviewHandler_Create_RatingOutOfRange(t *testing.T) {
	stub := &stubReviewService{
		createFn: func(_ context.Context, _ *domain.User, _ string, _ ports.ReviewInput) (*ports.ReviewDetail, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewReviewHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/reviews/book/book_1",
		`{"rating":6,"comment":"trop"}`)
	c.SetParamNames("bookId")
	c.SetParamValues("book_1")
	setActor(c, &domain.User{ID: "user_1", Role: domain.RoleUser})

	err := handler.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "rating" {
		t.Fatalf("fields = %+v, want rating failure", ve.Fields)
	}
}

func TestReviewHandler_Create_Duplicate(t *testing.T) {
	stub := &stubReviewService{
		createFn: func(_ context.Context, _ *domain.User, _ string, _ ports.ReviewInput) (*ports.ReviewDetail, error) {
			return nil, domain.ErrDuplicateReview
		},
	}
	handler := NewReviewHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/reviews/book/book_1",
		`{"rating":4,"comment":"encore"}`)
	c.SetParamNames("bookId")
	c.SetParamValues("book_1")
	setActor(c, &domain.User{ID: "user_1", Role: domain.RoleUser})

	if err := handler.Create(c); !errors.Is(err, domain.ErrDuplicateReview) {
		t.Fatalf("err = %v, want ErrDuplicateReview", err)
	}
}

func TestReviewHandler_Update_NotOwned(t *testing.T) {
	stub := &stubReviewService{
		updateFn: func(_ context.Context, _ *domain.User, _ string, _ ports.ReviewInput) (*ports.ReviewDetail, error) {
			return nil, domain.ErrReviewNotFound
		},
	}
	handler := NewReviewHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/api/reviews/review_1",
		`{"rating":1,"comment":"hack"}`)
	c.SetParamNames("id")
	c.SetParamValues("review_1")
	setActor(c, &domain.User{ID: "user_2", Role: domain.RoleUser})

	if err := handler.Update(c); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("err = %v, want ErrReviewNotFound", err)
	}
}

func TestReviewHandler_Delete_Success(t *testing.T) {
	stub := &stubReviewService{
		deleteFn: func(_ context.Context, actor *domain.User, id string) error {
			if actor.ID != "user_1" || id != "review_1" {
				t.Fatalf("unexpected args: %s %s", actor.ID, id)
			}
			return nil
		},
	}
	handler := NewReviewHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/reviews/review_1", "")
	c.SetParamNames("id")
	c.SetParamValues("review_1")
	setActor(c, &domain.User{ID: "user_1", Role: domain.RoleUser})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestReviewHandler_ListByBook(t *testing.T) {
	alice := &domain.User{ID: "user_1", Name: "Alice", Email: "alice@example.com"}
	stub := &stubReviewService{
		listFn: func(_ context.Context, bookID string, page, limit int) (*ports.ListReviewsResult, error) {
			if bookID != "book_1" || page != 2 || limit != 5 {
				t.Fatalf("unexpected args: %s %d %d", bookID, page, limit)
			}
			return &ports.ListReviewsResult{
				Items:      []ports.ReviewDetail{*sampleDetail(alice)},
				Pagination: ports.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
			}, nil
		},
	}
	handler := NewReviewHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/reviews/book/book_1?page=2&limit=5", "")
	c.SetParamNames("bookId")
	c.SetParamValues("book_1")

	if err := handler.ListByBook(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data, _ := decodeEnvelope(t, rec)["data"].(map[string]any)
	reviews, _ := data["reviews"].([]any)
	if len(reviews) != 1 {
		t.Fatalf("reviews = %v", data["reviews"])
	}
	pagination, _ := data["pagination"].(map[string]any)
	if pagination["total"] != float64(6) || pagination["pages"] != float64(2) {
		t.Fatalf("pagination = %+v", pagination)
	}
}
