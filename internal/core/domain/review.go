package domain

import "time"

// Review is an opinion left by a user on a book. The (BookID, UserID) pair is
// unique: one review per user per book, enforced by the store.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether the review belongs to the given user id.
func (r *Review) OwnedBy(userID string) bool {
	return r != nil && userID != "" && r.UserID == userID
}
