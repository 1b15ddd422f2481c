package domain

import "time"

// Genres is the closed set of catalogue genres accepted by the API.
var Genres = []string{
	"Roman",
	"Science-Fiction",
	"Fantasy",
	"Policier",
	"Biographie",
	"Histoire",
	"Jeunesse",
}

// ValidGenre reports whether g is one of the accepted catalogue genres.
func ValidGenre(g string) bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

// Book is a catalogue entry. ISBN is unique across the whole catalogue and
// books carry no ownership: mutation is gated on the admin role alone.
type Book struct {
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
