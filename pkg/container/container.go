// Package container wires the application graph: config, database pool,
// repositories, services, outbound clients and handlers.
package container

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/config"
	authordomain "bookcatalog-backend/internal/domains/author"
	authorhandler "bookcatalog-backend/internal/domains/author/handler"
	authorrepo "bookcatalog-backend/internal/domains/author/repository"
	authorservice "bookcatalog-backend/internal/domains/author/service"
	bookdomain "bookcatalog-backend/internal/domains/book"
	bookhandler "bookcatalog-backend/internal/domains/book/handler"
	bookrepo "bookcatalog-backend/internal/domains/book/repository"
	bookservice "bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/infrastructure/database"
	"bookcatalog-backend/internal/infrastructure/registry"
	"bookcatalog-backend/pkg/logger"
)

// Container holds every long-lived dependency, built once at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorService authordomain.Service
	BookService   bookdomain.Service

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
}

// New builds the dependency graph bottom-up. Failure anywhere aborts
// startup; there is no partial container.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbCfg)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	authorRepository := authorrepo.NewPostgresRepository(db.Pool)
	bookRepository := bookrepo.NewPostgresRepository(db.Pool)

	registryClient := registry.NewClient(cfg.OpenLibrary.APIURL)

	authorService := authorservice.NewAuthorService(authorRepository)
	bookService := bookservice.NewBookService(bookRepository, authorRepository, registryClient)

	return &Container{
		Config:        cfg,
		DB:            db,
		AuthorService: authorService,
		BookService:   bookService,
		AuthorHandler: authorhandler.NewAuthorHandler(authorService),
		BookHandler:   bookhandler.NewBookHandler(bookService),
	}, nil
}

// Cleanup releases every resource the container owns.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("Container cleaned up", nil)
}
