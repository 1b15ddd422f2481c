package domain

import "errors"

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrMissingToken       = errors.New("missing authentication token")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnknownActor       = errors.New("unknown user")
)

// Authorization.
var ErrForbidden = errors.New("access forbidden")

// Resource errors. "Not found" deliberately covers both absent resources and
// resources hidden by ownership, so callers cannot tell the cases apart.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
)

// Uniqueness conflicts, surfaced as typed errors by the repositories so no
// caller ever inspects driver error codes.
var (
	ErrEmailTaken      = errors.New("a user with this email already exists")
	ErrDuplicateISBN   = errors.New("a book with this isbn already exists")
	ErrDuplicateReview = errors.New("you have already posted a review for this book")
)
