package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the author side of the catalog.
//
// Not-found conditions are raised as functional errors and propagate to
// the boundary unmodified. Updates use ignore-null-on-merge: fields absent
// from the request keep their stored value.
type Service interface {
	List(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	Create(ctx context.Context, req *AuthorRequest) (*Author, error)
	Update(ctx context.Context, id uuid.UUID, req *AuthorRequest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
