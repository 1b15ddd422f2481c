package handler

import (
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

func toReviewResponse(d ports.ReviewDetail) reviewResponse {
	return reviewResponse{
		ID:     d.Review.ID,
		BookID: d.Review.BookID,
		User: reviewAuthorResponse{
			ID:    d.Author.ID,
			Name:  d.Author.Name,
			Email: d.Author.Email,
		},
		Rating:    d.Review.Rating,
		Comment:   d.Review.Comment,
		CreatedAt: d.Review.CreatedAt.UTC(),
		UpdatedAt: d.Review.UpdatedAt.UTC(),
	}
}

func toListReviewsData(r *ports.ListReviewsResult) listReviewsData {
	reviews := make([]reviewResponse, len(r.Items))
	for i, d := range r.Items {
		reviews[i] = toReviewResponse(d)
	}
	return listReviewsData{
		Reviews:    reviews,
		Pagination: toPaginationResponse(r.Pagination),
	}
}
