package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/domains/book/rating"
	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/pkg/logger"
)

var errRequiredAuthorID = errors.New("authorId is required")

type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
	registry   book.Registry
}

func NewBookService(repo book.Repository, authorRepo author.Repository, registry book.Registry) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		registry:   registry,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	logger.Info("Listing books", nil)

	books, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to list books", err)
		return nil, err
	}

	logger.Info("Listed books", map[string]interface{}{"count": len(books)})
	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	logger.Info("Getting book", map[string]interface{}{"book_id": id.String()})

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to get book", err)
		}
		return nil, err
	}

	return b, nil
}

func (s *bookService) GetByTitle(ctx context.Context, title string) (*book.Book, error) {
	logger.Info("Getting book by title", map[string]interface{}{"title": title})

	b, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to get book by title", err)
		}
		return nil, err
	}

	return b, nil
}

func (s *bookService) Create(ctx context.Context, req *book.BookRequest) (*book.Book, error) {
	logger.Info("Creating book", nil)

	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}
	if req.AuthorID == nil {
		return nil, apperror.Validation(errRequiredAuthorID)
	}

	// The author must exist before the book is persisted. The check and
	// the save are separate store calls; no transaction spans them.
	if err := s.requireAuthor(ctx, *req.AuthorID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		logger.Error("Failed to create book", err)
		return nil, err
	}

	logger.Info("Created book", map[string]interface{}{"book_id": created.ID.String()})
	return created, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.BookRequest) (*book.Book, error) {
	logger.Info("Updating book", map[string]interface{}{"book_id": id.String()})

	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to load book for update", err)
		}
		return nil, err
	}

	req.ApplyTo(existing)

	// Re-check the referenced author on every update, even when the
	// authorId did not change.
	if err := s.requireAuthor(ctx, existing.AuthorID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to update book", err)
		}
		return nil, err
	}

	logger.Info("Updated book", map[string]interface{}{"book_id": updated.ID.String()})
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Info("Deleting book", map[string]interface{}{"book_id": id.String()})

	if err := s.repo.Delete(ctx, id); err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to delete book", err)
		}
		return err
	}

	logger.Info("Deleted book", map[string]interface{}{"book_id": id.String()})
	return nil
}

func (s *bookService) GetRating(ctx context.Context, id uuid.UUID) (float64, error) {
	logger.Info("Computing book rating", map[string]interface{}{"book_id": id.String()})

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to load book for rating", err)
		}
		return 0, err
	}

	a, err := s.authorRepo.GetByID(ctx, b.AuthorID)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to load author for rating", err)
		}
		return 0, err
	}

	return rating.Calculate(b.PublicationDate.Time, a.FollowersNumber), nil
}

func (s *bookService) GetAuthors(ctx context.Context, bookIDs []uuid.UUID) ([]author.Author, error) {
	logger.Info("Resolving authors for books", map[string]interface{}{"count": len(bookIDs)})

	authors, err := s.repo.GetAuthorsByBookIDs(ctx, bookIDs)
	if err != nil {
		logger.Error("Failed to resolve authors for books", err)
		return nil, err
	}

	return authors, nil
}

func (s *bookService) LookupISBN(ctx context.Context, isbn string) (map[string]any, error) {
	logger.Info("Looking up ISBN", map[string]interface{}{"isbn": isbn})

	payload, err := s.registry.LookupISBN(ctx, isbn)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("ISBN lookup failed", err)
		}
		return nil, err
	}

	return payload, nil
}

func (s *bookService) requireAuthor(ctx context.Context, authorID uuid.UUID) error {
	exists, err := s.authorRepo.ExistsByID(ctx, authorID)
	if err != nil {
		logger.Error("Failed to check author existence", err)
		return err
	}
	if !exists {
		return apperror.AuthorNotFound(authorID)
	}
	return nil
}
