package catalog

import (
	"fmt"
	"sort"
	"strings"

	"shelfkeeper/internal/models"
	"shelfkeeper/internal/search"
)

// Sortable record fields.
const (
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldPages     = "pages"
	FieldTag       = "tag"
	FieldDateAdded = "dateAdded"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// SortFields lists the accepted sort field names.
func SortFields() []string {
	return []string{FieldTitle, FieldAuthor, FieldPages, FieldTag, FieldDateAdded, FieldCreatedAt, FieldUpdatedAt}
}

func validSortField(field string) bool {
	for _, f := range SortFields() {
		if f == field {
			return true
		}
	}
	return false
}

// SetSearch updates the search term and recomputes the view.
func (c *Catalog) SetSearch(term string) {
	c.term = term
	c.applyFiltersAndSort()
}

// SetRegexMode switches between literal and regex search and recomputes
// the view.
func (c *Catalog) SetRegexMode(on bool) {
	c.useRegex = on
	c.applyFiltersAndSort()
}

// RegexMode reports whether regex search is active.
func (c *Catalog) RegexMode() bool { return c.useRegex }

// SetSort replaces the sort spec and recomputes the view. Unknown fields
// are rejected.
func (c *Catalog) SetSort(field string, direction models.SortDirection) error {
	if !validSortField(field) {
		return fmt.Errorf("unknown sort field %q", field)
	}
	c.sortSpec = models.SortSpec{Field: field, Direction: direction}
	c.applyFiltersAndSort()
	return nil
}

// ToggleSortDirection flips the direction when field is already the sort
// field, and otherwise switches to that field ascending.
func (c *Catalog) ToggleSortDirection(field string) error {
	if !validSortField(field) {
		return fmt.Errorf("unknown sort field %q", field)
	}
	if c.sortSpec.Field == field {
		if c.sortSpec.Direction == models.SortAsc {
			c.sortSpec.Direction = models.SortDesc
		} else {
			c.sortSpec.Direction = models.SortAsc
		}
	} else {
		c.sortSpec = models.SortSpec{Field: field, Direction: models.SortAsc}
	}
	c.applyFiltersAndSort()
	return nil
}

// applyFiltersAndSort recomputes the view from scratch: filter the full
// collection by the current term, then stable-sort by the current spec.
// Ties keep their pre-sort relative order.
func (c *Catalog) applyFiltersAndSort() {
	filtered := search.SearchRecords(c.records, c.term, search.Options{UseRegex: c.useRegex})

	view := make([]models.Record, len(filtered))
	copy(view, filtered)

	field := c.sortSpec.Field
	desc := c.sortSpec.Direction == models.SortDesc
	sort.SliceStable(view, func(i, j int) bool {
		cmp := compareByField(view[i], view[j], field)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	c.view = view
}

// compareByField orders two records by one field: strings
// case-insensitively, pages numerically, timestamps by instant.
func compareByField(a, b models.Record, field string) int {
	switch field {
	case FieldTitle:
		return compareFold(a.Title, b.Title)
	case FieldAuthor:
		return compareFold(a.Author, b.Author)
	case FieldTag:
		return compareFold(a.Tag, b.Tag)
	case FieldPages:
		switch {
		case a.Pages < b.Pages:
			return -1
		case a.Pages > b.Pages:
			return 1
		}
		return 0
	case FieldDateAdded:
		// YYYY-MM-DD compares correctly as a string
		return strings.Compare(a.DateAdded, b.DateAdded)
	case FieldCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case FieldUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
	return 0
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
