package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/shared/middleware"
	"bookcatalog-backend/pkg/container"
)

// setupRouter builds the full route tree. The health endpoint is open;
// everything under /api sits behind the shared-secret api-key check.
func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	})

	api := router.Group("/api")
	api.Use(middleware.APIKey(c.Config.API.Key))

	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.Get)
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}

	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.Get)
		books.GET("/title/:title", c.BookHandler.GetByTitle)
		books.POST("", c.BookHandler.Create)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
		books.GET("/:id/rating", c.BookHandler.GetRating)
		books.POST("/authors", c.BookHandler.GetAuthors)
		books.GET("/isbn/:isbn", c.BookHandler.LookupISBN)
	}

	return router
}
