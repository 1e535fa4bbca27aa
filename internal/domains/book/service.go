package book

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
)

// Service defines the book side of the catalog.
//
// Every mutating call re-checks the referenced author's existence, even
// when the authorId is unchanged. The existence check and the write are
// separate store calls with no wrapping transaction, so an author deleted
// in between can leave a dangling reference; that race is accepted here.
type Service interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	GetByTitle(ctx context.Context, title string) (*Book, error)
	Create(ctx context.Context, req *BookRequest) (*Book, error)
	Update(ctx context.Context, id uuid.UUID, req *BookRequest) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// GetRating derives the book's quality score on demand; nothing is
	// cached or persisted.
	GetRating(ctx context.Context, id uuid.UUID) (float64, error)

	// GetAuthors resolves the distinct authors of the given books.
	GetAuthors(ctx context.Context, bookIDs []uuid.UUID) ([]author.Author, error)

	// LookupISBN consults the external bibliographic registry.
	LookupISBN(ctx context.Context, isbn string) (map[string]any, error)
}

// Registry is the outbound contract for ISBN lookups. An ISBN unknown to
// the registry raises the functional not-found error; transport failures
// stay technical.
type Registry interface {
	LookupISBN(ctx context.Context, isbn string) (map[string]any, error)
}
