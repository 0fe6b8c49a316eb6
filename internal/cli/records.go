package cli

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"shelfkeeper/internal/catalog"
	"shelfkeeper/internal/common"
	"shelfkeeper/internal/models"
	"shelfkeeper/internal/search"
	"shelfkeeper/internal/validation"
)

// promptRecordInput collects the record form. When base is non-nil its
// values are shown and kept for fields left empty, so editing only
// touches what the user retypes.
func (a *App) promptRecordInput(base *validation.RecordInput) (*validation.RecordInput, error) {
	prompt := func(label, current string) (string, error) {
		p := label
		if current != "" {
			p = label + " [" + current + "]"
		}
		v, err := GetSimpleText(a.reader, p, a.out)
		if err != nil {
			return "", err
		}
		if v == "" && current != "" {
			return current, nil
		}
		return v, nil
	}

	var cur validation.RecordInput
	if base != nil {
		cur = *base
	}

	in := validation.RecordInput{}
	var err error
	if in.Title, err = prompt("Title", cur.Title); err != nil {
		return nil, err
	}
	if in.Author, err = prompt("Author", cur.Author); err != nil {
		return nil, err
	}
	if in.Pages, err = prompt("Pages", cur.Pages); err != nil {
		return nil, err
	}
	if in.Tag, err = prompt("Tag", cur.Tag); err != nil {
		return nil, err
	}
	if in.DateAdded, err = prompt("Date added (YYYY-MM-DD)", cur.DateAdded); err != nil {
		return nil, err
	}
	return &in, nil
}

func (a *App) printFieldErrors(fields map[string]validation.FieldError) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.printf("  %s: %s\n", name, fields[name].Message)
	}
}

func (a *App) printWarnings(warnings map[string]string) {
	names := make([]string, 0, len(warnings))
	for name := range warnings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.printf("  warning (%s): %s\n", name, warnings[name])
	}
}

func (a *App) addRecord(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	in, err := a.promptRecordInput(nil)
	if err != nil {
		a.println(err.Error())
		return
	}

	rec, warnings, err := a.catalog.AddRecord(ctx, *in)
	if err != nil {
		var valErr *catalog.ValidationError
		if errors.As(err, &valErr) {
			a.println("Record rejected:")
			a.printFieldErrors(valErr.Fields)
		} else {
			a.println(err.Error())
		}
		return
	}

	a.printWarnings(warnings)
	a.printf("Added %q (%s)\n", rec.Title, rec.ID)
}

func (a *App) editRecord(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		a.println("Usage: edit <id>")
		return
	}

	existing, err := a.catalog.Get(args[0])
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.println("Record not found:", args[0])
		} else {
			a.println(err.Error())
		}
		return
	}

	base := recordInputOf(existing)
	in, err := a.promptRecordInput(&base)
	if err != nil {
		a.println(err.Error())
		return
	}

	rec, warnings, err := a.catalog.UpdateRecord(ctx, existing.ID, *in)
	if err != nil {
		var valErr *catalog.ValidationError
		if errors.As(err, &valErr) {
			a.println("Record rejected:")
			a.printFieldErrors(valErr.Fields)
		} else {
			a.println(err.Error())
		}
		return
	}

	a.printWarnings(warnings)
	a.printf("Updated %q\n", rec.Title)
}

func (a *App) deleteRecord(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		a.println("Usage: delete <id>")
		return
	}

	if err := a.catalog.DeleteRecord(ctx, args[0]); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.println("Record not found:", args[0])
		} else {
			a.println(err.Error())
		}
		return
	}
	a.println("Deleted", args[0])
}

// list renders the current view: the collection after the active search
// filter and sort order, with search matches highlighted.
func (a *App) list() {
	if !a.requireLogin() {
		return
	}

	view := a.catalog.View()
	if len(view) == 0 {
		if a.catalog.SearchTerm() != "" {
			a.println("No records match the current search")
		} else {
			a.println("No records yet (type 'add')")
		}
		return
	}

	term := a.catalog.SearchTerm()
	spec := a.catalog.Sort()
	a.printf("%d record(s), sorted by %s %s", len(view), spec.Field, spec.Direction)
	if term != "" {
		a.printf(", search: %q", term)
		if a.catalog.RegexMode() {
			a.printf(" (regex)")
		}
	}
	a.println()

	for _, r := range view {
		title := r.Title
		author := r.Author
		tag := r.Tag
		suffix := ""
		if term != "" && !a.catalog.RegexMode() {
			title = search.HighlightMatches(title, term)
			author = search.HighlightMatches(author, term)
			tag = search.HighlightMatches(tag, term)
			if info := search.MatchInfo(r, term); len(info) > 0 {
				suffix = " (matches: " + strings.Join(info, ", ") + ")"
			}
		}
		a.printf("  %s  %q by %s, %d pages, %s, added %s%s\n",
			r.ID, title, author, r.Pages, tag, r.DateAdded, suffix)
	}
}

func (a *App) search(args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) == 0 {
		a.catalog.SetSearch("")
		a.println("Search cleared")
		a.list()
		return
	}

	term := strings.Join(args, " ")
	a.catalog.SetSearch(term)
	a.list()
}

func (a *App) regexMode(args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		a.println("Usage: regex on|off")
		return
	}
	a.catalog.SetRegexMode(args[0] == "on")
	a.println("Regex mode:", args[0])
}

// sortBy resorts the view: picking the current field flips the
// direction, picking a new field sorts it ascending.
func (a *App) sortBy(args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		a.println("Usage: sort <field>, one of:", strings.Join(catalog.SortFields(), ", "))
		return
	}

	if err := a.catalog.ToggleSortDirection(args[0]); err != nil {
		a.println(err.Error())
		return
	}
	a.list()
}

func (a *App) stats() {
	if !a.requireLogin() {
		return
	}

	s := a.catalog.Stats()
	a.printf("Records:          %d\n", s.Total)
	a.printf("Total pages:      %d\n", s.TotalPages)
	if s.TagCount > 0 {
		a.printf("Most common tag:  %s (%d)\n", s.MostFrequentTag, s.TagCount)
	} else {
		a.printf("Most common tag:  %s\n", s.MostFrequentTag)
	}
	a.printf("Added last 7 days: %d\n", s.RecentRecords)
}

func recordInputOf(r *models.Record) validation.RecordInput {
	return validation.RecordInput{
		Title:     r.Title,
		Author:    r.Author,
		Pages:     strconv.Itoa(r.Pages),
		Tag:       r.Tag,
		DateAdded: r.DateAdded,
	}
}
