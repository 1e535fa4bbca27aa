package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date wire format for publicationDate.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals as
// "YYYY-MM-DD" and keeps only year, month and day when built from a
// time.Time.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("publicationDate must be %s: %w", DateLayout, err)
	}
	d.Time = t
	return nil
}

// Book is the domain entity. AuthorName is resolved from the owning
// author on every load; the rating is never stored here, it is derived on
// demand by the rating package.
type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationDate Date      `json:"publicationDate" db:"publication_date"`
	Type            string    `json:"type" db:"type"`
	AuthorID        uuid.UUID `json:"authorId" db:"author_id"`
	AuthorName      string    `json:"authorName" db:"author_name"`
}
