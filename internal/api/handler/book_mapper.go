package handler

import (
	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

func toBookInput(req bookRequest) ports.BookInput {
	return ports.BookInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
		Publisher:       req.Publisher,
		Pages:           req.Pages,
		Summary:         req.Summary,
		Available:       req.Available,
	}
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Genre:           b.Genre,
		PublicationYear: b.PublicationYear,
		Publisher:       b.Publisher,
		Pages:           b.Pages,
		Summary:         b.Summary,
		Available:       b.Available,
		CreatedAt:       b.CreatedAt.UTC(),
		UpdatedAt:       b.UpdatedAt.UTC(),
	}
}

func toListBooksData(r *ports.ListBooksResult) listBooksData {
	books := make([]bookResponse, len(r.Items))
	for i, b := range r.Items {
		books[i] = toBookResponse(b)
	}
	return listBooksData{
		Books:      books,
		Pagination: toPaginationResponse(r.Pagination),
	}
}

func toPaginationResponse(p ports.Pagination) paginationResponse {
	return paginationResponse{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Pages: p.Pages,
	}
}
