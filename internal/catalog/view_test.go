package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfkeeper/internal/models"
)

func seedLibrary(t *testing.T) *Catalog {
	t.Helper()
	c := newTestCatalog(t)
	mustAdd(t, c, input("Dune", "Frank Herbert", "412", "Sci-Fi", "2024-01-15"))
	mustAdd(t, c, input("Foundation", "Isaac Asimov", "255", "Sci-Fi", "2024-02-01"))
	mustAdd(t, c, input("Hamlet", "William Shakespeare", "160", "Drama", "2024-01-20"))
	return c
}

func viewTitles(c *Catalog) []string {
	out := make([]string, 0, len(c.View()))
	for _, r := range c.View() {
		out = append(out, r.Title)
	}
	return out
}

func TestDefaultSort_DateAddedDescending(t *testing.T) {
	c := seedLibrary(t)
	assert.Equal(t, []string{"Foundation", "Hamlet", "Dune"}, viewTitles(c))
}

func TestSetSearch_FiltersView(t *testing.T) {
	c := seedLibrary(t)

	c.SetSearch("sci-fi")
	assert.Equal(t, []string{"Foundation", "Dune"}, viewTitles(c))

	c.SetSearch("")
	assert.Len(t, c.View(), 3)
}

func TestSetRegexMode(t *testing.T) {
	c := seedLibrary(t)

	c.SetRegexMode(true)
	c.SetSearch("^h")
	assert.Equal(t, []string{"Hamlet"}, viewTitles(c))

	c.SetRegexMode(false)
	assert.Empty(t, viewTitles(c), "literal ^h matches nothing")
}

func TestSetSort(t *testing.T) {
	c := seedLibrary(t)

	require.NoError(t, c.SetSort(FieldTitle, models.SortAsc))
	assert.Equal(t, []string{"Dune", "Foundation", "Hamlet"}, viewTitles(c))

	require.NoError(t, c.SetSort(FieldPages, models.SortDesc))
	assert.Equal(t, []string{"Dune", "Foundation", "Hamlet"}, viewTitles(c))

	require.NoError(t, c.SetSort(FieldPages, models.SortAsc))
	assert.Equal(t, []string{"Hamlet", "Foundation", "Dune"}, viewTitles(c))
}

func TestSetSort_CaseInsensitiveStrings(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, input("zebra", "A", "10", "Tag", "2024-01-01"))
	mustAdd(t, c, input("Apple", "B", "10", "Tag", "2024-01-02"))

	require.NoError(t, c.SetSort(FieldTitle, models.SortAsc))
	assert.Equal(t, []string{"Apple", "zebra"}, viewTitles(c))
}

func TestSetSort_UnknownFieldRejected(t *testing.T) {
	c := seedLibrary(t)
	require.Error(t, c.SetSort("isbn", models.SortAsc))
	require.Error(t, c.ToggleSortDirection("isbn"))
}

func TestToggleSortDirection(t *testing.T) {
	c := seedLibrary(t)

	// different field: switch to it ascending
	require.NoError(t, c.ToggleSortDirection(FieldTitle))
	assert.Equal(t, models.SortSpec{Field: FieldTitle, Direction: models.SortAsc}, c.Sort())

	// same field: flip
	require.NoError(t, c.ToggleSortDirection(FieldTitle))
	assert.Equal(t, models.SortDesc, c.Sort().Direction)

	// toggling twice returns to the original direction
	require.NoError(t, c.ToggleSortDirection(FieldTitle))
	assert.Equal(t, models.SortAsc, c.Sort().Direction)
}

func TestSort_StableOnTies(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, input("First", "Same Author", "100", "Same", "2024-01-01"))
	mustAdd(t, c, input("Second", "Same Author", "100", "Same", "2024-01-01"))
	mustAdd(t, c, input("Third", "Same Author", "100", "Same", "2024-01-01"))

	require.NoError(t, c.SetSort(FieldPages, models.SortAsc))
	assert.Equal(t, []string{"First", "Second", "Third"}, viewTitles(c))

	require.NoError(t, c.SetSort(FieldTag, models.SortDesc))
	assert.Equal(t, []string{"First", "Second", "Third"}, viewTitles(c),
		"equal keys keep their pre-sort relative order")
}

func TestViewRecomputedAfterMutation(t *testing.T) {
	c := seedLibrary(t)
	c.SetSearch("sci-fi")
	require.Len(t, c.View(), 2)

	mustAdd(t, c, input("Neuromancer", "William Gibson", "271", "Sci-Fi", "2024-03-01"))
	assert.Equal(t, []string{"Neuromancer", "Foundation", "Dune"}, viewTitles(c))
}
