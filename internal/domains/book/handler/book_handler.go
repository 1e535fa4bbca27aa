package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/response"
)

// BookHandler exposes the book CRUD surface plus the derived rating, the
// batch author resolution and the external ISBN lookup.
type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, books)
}

// Get handles GET /api/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, b)
}

// GetByTitle handles GET /api/books/title/:title
func (h *BookHandler) GetByTitle(c *gin.Context) {
	b, err := h.service.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, b)
}

// Create handles POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.Validation(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.Created(c, created)
}

// Update handles PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.Validation(err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, updated)
}

// Delete handles DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Problem(c, err)
		return
	}

	response.NoContent(c)
}

// GetRating handles GET /api/books/:id/rating
func (h *BookHandler) GetRating(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	score, err := h.service.GetRating(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, score)
}

// GetAuthors handles POST /api/books/authors
func (h *BookHandler) GetAuthors(c *gin.Context) {
	var ids []uuid.UUID
	if err := c.ShouldBindJSON(&ids); err != nil {
		response.Problem(c, apperror.Validation(err))
		return
	}

	authors, err := h.service.GetAuthors(c.Request.Context(), ids)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, authors)
}

// LookupISBN handles GET /api/books/isbn/:isbn
func (h *BookHandler) LookupISBN(c *gin.Context) {
	payload, err := h.service.LookupISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, payload)
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation(fmt.Errorf("id must be a valid UUID"))
	}
	return id, nil
}
