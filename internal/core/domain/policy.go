package domain

// Access policy: pure decision functions with no I/O. Every function is total
// and nil-safe; callers translate false into the caller-visible failure
// (ErrForbidden for books, ErrReviewNotFound for ownership-hidden reviews).

// CanCreateBook reports whether the actor may add a catalogue entry.
func CanCreateBook(actor *User) bool {
	return actor.IsAdmin()
}

// CanModifyBook reports whether the actor may update or delete a catalogue
// entry. Books have no owner; the admin role alone decides.
func CanModifyBook(actor *User) bool {
	return actor.IsAdmin()
}

// CanCreateReview reports whether the actor may review the given book. Any
// authenticated actor qualifies as long as the book exists; the one-review-
// per-book rule is enforced by the store's uniqueness constraint, not here.
func CanCreateReview(actor *User, book *Book) bool {
	return actor != nil && book != nil
}

// CanModifyReview reports whether the actor may update the review. Only the
// owner may: the admin role does not bypass ownership on update.
func CanModifyReview(actor *User, review *Review) bool {
	return actor != nil && review.OwnedBy(actor.ID)
}

// CanDeleteReview reports whether the actor may delete the review. The owner
// may, and an admin may delete any review.
func CanDeleteReview(actor *User, review *Review) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor != nil && review.OwnedBy(actor.ID)
}
