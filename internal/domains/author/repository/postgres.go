package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/apperror"
)

// postgresRepository implements author.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, age, followers_number)
        VALUES ($1, $2, $3)
        RETURNING id, name, age, followers_number
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Age, a.FollowersNumber).Scan(
		&created.ID,
		&created.Name,
		&created.Age,
		&created.FollowersNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT id, name, age, followers_number
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Age,
		&a.FollowersNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.AuthorNotFound(id)
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, age, followers_number
        FROM authors
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.FollowersNumber); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, age = $2, followers_number = $3
        WHERE id = $4
        RETURNING id, name, age, followers_number
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Age, a.FollowersNumber, a.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Age,
		&updated.FollowersNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.AuthorNotFound(a.ID)
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// books.author_id carries ON DELETE CASCADE, so dependent books are
	// removed by the store, not by this layer.
	query := `DELETE FROM authors WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperror.AuthorNotFound(id)
	}

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}
