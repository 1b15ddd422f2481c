package handler

import "time"

// reviewRequest is the payload for creating or updating a review.
type reviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

type reviewAuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type reviewResponse struct {
	ID        string               `json:"id"`
	BookID    string               `json:"book_id"`
	User      reviewAuthorResponse `json:"user"`
	Rating    int                  `json:"rating"`
	Comment   string               `json:"comment"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type reviewData struct {
	Review reviewResponse `json:"review"`
}

type listReviewsData struct {
	Reviews    []reviewResponse   `json:"reviews"`
	Pagination paginationResponse `json:"pagination"`
}
