package book

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
)

// Repository is the persistence contract for books. Loads always resolve
// the owning author's name; ids absent from the store surface as
// functional not-found errors.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetByTitle matches the title exactly and returns the first row.
	GetByTitle(ctx context.Context, title string) (*Book, error)

	GetAll(ctx context.Context) ([]Book, error)
	Update(ctx context.Context, b *Book) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// GetAuthorsByBookIDs resolves the distinct authors referenced by
	// the given book ids. Unknown ids are skipped, never an error.
	GetAuthorsByBookIDs(ctx context.Context, ids []uuid.UUID) ([]author.Author, error)
}
