package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AuthorRequest is the payload for create and update. Every field is a
// pointer so a partial update can tell "absent" from "zero": nil fields
// never overwrite stored values.
type AuthorRequest struct {
	Name            *string `json:"name,omitempty"`
	Age             *int    `json:"age,omitempty"`
	FollowersNumber *int    `json:"followersNumber,omitempty"`
}

// Validate enforces structural rules on the incoming payload.
func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Required, validation.Length(1, 255))),
		validation.Field(&r.Age, validation.When(r.Age != nil, validation.Min(0))),
		validation.Field(&r.FollowersNumber, validation.When(r.FollowersNumber != nil, validation.Min(0))),
	)
}

// ToEntity builds a new Author from the request. The id stays zero; the
// store assigns it on insert.
func (r AuthorRequest) ToEntity() *Author {
	a := &Author{}
	r.ApplyTo(a)
	return a
}

// ApplyTo merges the request into an existing Author: each field is
// patch-if-present, and the id is never touched. Pure, so merge semantics
// are testable without persistence.
func (r AuthorRequest) ApplyTo(a *Author) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Age != nil {
		a.Age = *r.Age
	}
	if r.FollowersNumber != nil {
		a.FollowersNumber = *r.FollowersNumber
	}
}
