package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/response"
)

// AuthorHandler exposes the author CRUD surface.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// List handles GET /api/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, authors)
}

// Get handles GET /api/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.OK(c, a)
}

// Create handles POST /api/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.AuthorRequest
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

// Update handles PUT /api/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	var req author.AuthorRequest
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

// Delete handles DELETE /api/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
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

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation(fmt.Errorf("id must be a valid UUID"))
	}
	return id, nil
}
