package ports

import (
	"context"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts a new user. A uniqueness violation on the normalized
	// email is returned as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks a user up by normalized email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID looks a user up by id. Unknown or malformed ids return
	// domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users matching the given ids, keyed by id.
	// Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}
