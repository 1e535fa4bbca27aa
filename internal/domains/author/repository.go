package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for authors. Every method maps
// to a single-row store operation; the service composes them without any
// wrapping transaction.
type Repository interface {
	// Create inserts the author and returns it with the generated id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns the functional not-found error when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll returns authors in store iteration order.
	GetAll(ctx context.Context) ([]Author, error)

	// Update persists the full record (merge happens in the service).
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author; dependent books cascade at store level.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID is the lightweight existence probe used by cross-entity
	// checks.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
