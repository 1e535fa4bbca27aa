package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookcatalog-backend/internal/shared/apperror"
)

func TestFormat(t *testing.T) {
	got := Format("en", apperror.ReasonAuthorNotFoundID, "a1b2")
	assert.Equal(t, "Author not found with id: a1b2", got)

	got = Format("en", apperror.ReasonBookNotFoundISBN, "9780441172719")
	assert.Equal(t, "Book not found with isbn: 9780441172719", got)
}

func TestFormatUnknownLocaleFallsBack(t *testing.T) {
	got := Format("xx", apperror.ReasonBookNotFoundTitle, "Dune")
	assert.Equal(t, "Book not found with title: Dune", got)
}

func TestFormatUnknownReasonNeverLeaksKey(t *testing.T) {
	got := Format("en", apperror.Reason("error.unmapped"))
	assert.Equal(t, "A technical error has occurred", got)
}
