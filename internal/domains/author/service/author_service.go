package service

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/pkg/logger"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	logger.Info("Listing authors", nil)

	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to list authors", err)
		return nil, err
	}

	logger.Info("Listed authors", map[string]interface{}{"count": len(authors)})
	return authors, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	logger.Info("Getting author", map[string]interface{}{"author_id": id.String()})

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to get author", err)
		}
		return nil, err
	}

	return a, nil
}

func (s *authorService) Create(ctx context.Context, req *author.AuthorRequest) (*author.Author, error) {
	logger.Info("Creating author", nil)

	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		logger.Error("Failed to create author", err)
		return nil, err
	}

	logger.Info("Created author", map[string]interface{}{"author_id": created.ID.String()})
	return created, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.AuthorRequest) (*author.Author, error) {
	logger.Info("Updating author", map[string]interface{}{"author_id": id.String()})

	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to load author for update", err)
		}
		return nil, err
	}

	// Merge before persisting: absent fields keep their stored values.
	req.ApplyTo(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to update author", err)
		}
		return nil, err
	}

	logger.Info("Updated author", map[string]interface{}{"author_id": updated.ID.String()})
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Info("Deleting author", map[string]interface{}{"author_id": id.String()})

	if err := s.repo.Delete(ctx, id); err != nil {
		if !apperror.IsFunctional(err) {
			logger.Error("Failed to delete author", err)
		}
		return err
	}

	logger.Info("Deleted author", map[string]interface{}{"author_id": id.String()})
	return nil
}
