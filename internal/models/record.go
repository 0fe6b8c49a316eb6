// Package models defines the data types persisted by shelfkeeper:
// catalog records, users, sessions, and settings.
package models

import "time"

// DateLayout is the calendar-date format used by Record.DateAdded.
const DateLayout = "2006-01-02"

// Record is a single catalogued book entry.
type Record struct {
	// ID is a globally unique identifier assigned at creation.
	ID string `json:"id"`

	Title  string `json:"title"`
	Author string `json:"author"`

	// Pages is a non-negative page count.
	Pages int `json:"pages"`

	// Tag is a category label: alphabetic words separated by single
	// spaces or hyphens.
	Tag string `json:"tag"`

	// DateAdded is a calendar date (YYYY-MM-DD), independent of the
	// creation timestamp.
	DateAdded string `json:"dateAdded"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SortDirection orders a sorted view ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec describes the current ordering of the catalog view.
type SortSpec struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}
