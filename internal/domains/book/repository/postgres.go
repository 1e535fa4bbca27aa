package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/apperror"
)

// postgresRepository implements book.Repository on pgxpool. Every book
// load joins the owning author so AuthorName is always populated.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// isForeignKeyViolation matches PostgreSQL error 23503.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

const bookColumns = `
    b.id, b.title, b.publication_date, b.type, b.author_id, a.name AS author_name
`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var pubDate time.Time
	err := row.Scan(&b.ID, &b.Title, &pubDate, &b.Type, &b.AuthorID, &b.AuthorName)
	if err != nil {
		return nil, err
	}
	b.PublicationDate = book.DateOf(pubDate)
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, publication_date, type, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, b.Title, b.PublicationDate.Time, b.Type, b.AuthorID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			// The author vanished between the service's existence check
			// and this save; no transaction spans the two calls.
			return nil, apperror.AuthorNotFound(b.AuthorID)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	// Re-read through the join so the author name comes back resolved.
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.BookNotFound(id)
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetByTitle(ctx context.Context, title string) (*book.Book, error) {
	// Titles are not unique at store level; the first match wins.
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.title = $1
        LIMIT 1
    `

	b, err := scanBook(r.pool.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.BookNotFoundByTitle(title)
		}
		return nil, fmt.Errorf("failed to get book by title: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $1, publication_date = $2, type = $3, author_id = $4
        WHERE id = $5
        RETURNING id
    `

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, b.Title, b.PublicationDate.Time, b.Type, b.AuthorID, b.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.BookNotFound(b.ID)
		}
		if isForeignKeyViolation(err) {
			return nil, apperror.AuthorNotFound(b.AuthorID)
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM books WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperror.BookNotFound(id)
	}

	return nil
}

func (r *postgresRepository) GetAuthorsByBookIDs(ctx context.Context, ids []uuid.UUID) ([]author.Author, error) {
	// Unknown book ids simply match no rows; partial misses are fine.
	query := `
        SELECT DISTINCT a.id, a.name, a.age, a.followers_number
        FROM authors a
        JOIN books b ON b.author_id = a.id
        WHERE b.id = ANY($1)
    `

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors by book ids: %w", err)
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
