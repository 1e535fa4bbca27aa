// Package messages resolves error-reason codes to human-readable text.
// Keeping the catalog separate from apperror means the service layer never
// touches message templates: it raises (reason, params) pairs and this
// component formats them at the boundary.
package messages

import (
	"fmt"

	"bookcatalog-backend/internal/shared/apperror"
)

// DefaultLocale is used when no locale is negotiated.
const DefaultLocale = "en"

// catalog maps locale -> reason -> fmt template.
var catalog = map[string]map[apperror.Reason]string{
	"en": {
		apperror.ReasonAuthorNotFoundID:  "Author not found with id: %v",
		apperror.ReasonBookNotFoundID:    "Book not found with id: %v",
		apperror.ReasonBookNotFoundTitle: "Book not found with title: %v",
		apperror.ReasonBookNotFoundISBN:  "Book not found with isbn: %v",
		apperror.ReasonValidation:        "Invalid request: %v",
		apperror.ReasonTechnical:         "A technical error has occurred",
		apperror.ReasonInvalidAPIKey:     "Invalid or missing API key",
	},
}

// Format renders a reason code with its parameters in the given locale.
// Unknown locales fall back to the default; unknown reasons fall back to
// the generic technical message so a gap in the catalog never leaks a key.
func Format(locale string, reason apperror.Reason, params ...any) string {
	templates, ok := catalog[locale]
	if !ok {
		templates = catalog[DefaultLocale]
	}
	tmpl, ok := templates[reason]
	if !ok {
		return templates[apperror.ReasonTechnical]
	}
	if len(params) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, params...)
}
