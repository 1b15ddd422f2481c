package handler

import "time"

// bookRequest is the payload for creating or updating a catalogue entry.
type bookRequest struct {
	Title           string `json:"title"            validate:"required"`
	Author          string `json:"author"           validate:"required"`
	ISBN            string `json:"isbn"             validate:"required"`
	Genre           string `json:"genre"            validate:"required,oneof=Roman Science-Fiction Fantasy Policier Biographie Histoire Jeunesse"`
	PublicationYear int    `json:"publication_year" validate:"required,gte=1000,notfuture"`
	Publisher       string `json:"publisher"        validate:"required"`
	Pages           int    `json:"pages"            validate:"required,gte=1"`
	Summary         string `json:"summary"          validate:"max=2000"`
	Available       *bool  `json:"available"`
}

type bookResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Genre           string    `json:"genre"`
	PublicationYear int       `json:"publication_year"`
	Publisher       string    `json:"publisher"`
	Pages           int       `json:"pages"`
	Summary         string    `json:"summary,omitempty"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type bookData struct {
	Book bookResponse `json:"book"`
}

type listBooksData struct {
	Books      []bookResponse     `json:"books"`
	Pagination paginationResponse `json:"pagination"`
}
