package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// BookRequest is the payload for create and update. Pointer fields give
// partial updates ignore-null-on-merge semantics: nil means "keep the
// stored value".
type BookRequest struct {
	Title           *string    `json:"title,omitempty"`
	PublicationDate *Date      `json:"publicationDate,omitempty"`
	Type            *string    `json:"type,omitempty"`
	AuthorID        *uuid.UUID `json:"authorId,omitempty"`
}

// Validate enforces structural rules; cross-entity rules (author
// existence) belong to the service.
func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Required, validation.Length(1, 255))),
		validation.Field(&r.Type, validation.When(r.Type != nil, validation.Length(1, 100))),
	)
}

// ToEntity builds a new Book from the request. The id stays zero until
// the store assigns one.
func (r BookRequest) ToEntity() *Book {
	b := &Book{}
	r.ApplyTo(b)
	return b
}

// ApplyTo merges the request into an existing Book, patch-if-present per
// field. The id is never touched.
func (r BookRequest) ApplyTo(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.PublicationDate != nil {
		b.PublicationDate = *r.PublicationDate
	}
	if r.Type != nil {
		b.Type = *r.Type
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
}
