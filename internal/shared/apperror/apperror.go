// Package apperror classifies every failure the catalog service can raise
// into one of two kinds: Functional (caller can correct it) and Technical
// (unexpected, infrastructure-shaped). Services raise reason codes with
// parameters; rendering them as text is the messages package's job.
package apperror

import (
	"errors"
	"fmt"
)

// Kind separates client-correctable failures from system failures.
type Kind int

const (
	KindFunctional Kind = iota
	KindTechnical
)

// Name returns the kind name surfaced as the wire error title.
func (k Kind) Name() string {
	if k == KindFunctional {
		return "FunctionalError"
	}
	return "TechnicalError"
}

// Reason is a closed enumeration of error-reason codes. Each code is bound
// to a message template in the messages catalog.
type Reason string

const (
	ReasonAuthorNotFoundID  Reason = "error.author.not_found_id"
	ReasonBookNotFoundID    Reason = "error.book.not_found_id"
	ReasonBookNotFoundTitle Reason = "error.book.not_found_title"
	ReasonBookNotFoundISBN  Reason = "error.book.not_found_isbn"
	ReasonValidation        Reason = "error.validation"
	ReasonTechnical         Reason = "error.ws.technical"
	ReasonInvalidAPIKey     Reason = "error.invalid.api_key"
)

// Error carries a classified failure through the service layer untouched
// until the boundary translator renders it.
type Error struct {
	Kind   Kind
	Reason Reason
	Params []any
	Err    error // wrapped cause, technical errors only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if len(e.Params) > 0 {
		return fmt.Sprintf("%s %v", e.Reason, e.Params)
	}
	return string(e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AuthorNotFound raises the functional error for a missing author id.
func AuthorNotFound(id any) *Error {
	return &Error{Kind: KindFunctional, Reason: ReasonAuthorNotFoundID, Params: []any{id}}
}

// BookNotFound raises the functional error for a missing book id.
func BookNotFound(id any) *Error {
	return &Error{Kind: KindFunctional, Reason: ReasonBookNotFoundID, Params: []any{id}}
}

// BookNotFoundByTitle raises the functional error for a title with no match.
func BookNotFoundByTitle(title string) *Error {
	return &Error{Kind: KindFunctional, Reason: ReasonBookNotFoundTitle, Params: []any{title}}
}

// BookNotFoundByISBN raises the functional error for an ISBN absent from
// the external registry.
func BookNotFoundByISBN(isbn string) *Error {
	return &Error{Kind: KindFunctional, Reason: ReasonBookNotFoundISBN, Params: []any{isbn}}
}

// Validation wraps a structurally invalid request as a functional error.
// The validation library's message is used verbatim as the parameter.
func Validation(err error) *Error {
	return &Error{Kind: KindFunctional, Reason: ReasonValidation, Params: []any{err.Error()}}
}

// Technical wraps an unexpected failure. The cause is kept for logs but
// never rendered to clients.
func Technical(err error) *Error {
	return &Error{Kind: KindTechnical, Reason: ReasonTechnical, Err: err}
}

// Classify reports the kind of any error. Errors that are not Error
// values default to Technical: anything uncaught reaching the boundary is
// a system failure.
func Classify(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindTechnical
}

// IsFunctional reports whether err is a client-correctable failure.
func IsFunctional(err error) bool {
	return Classify(err) == KindFunctional
}
