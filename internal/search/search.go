// Package search filters catalog records by a search term, in either
// literal-substring or regular-expression mode, and annotates matches for
// the renderer. Everything here is a pure function over its inputs.
package search

import (
	"regexp"
	"strconv"
	"strings"

	"shelfkeeper/internal/models"
)

// Options controls how the search term is interpreted.
type Options struct {
	// UseRegex compiles the term as a case-insensitive regular
	// expression. An uncompilable pattern silently degrades to literal
	// matching; the caller never sees the error.
	UseRegex bool
}

// Highlight markers wrapped around matched text. They default to ANSI
// reverse video; a renderer with other needs can swap them.
var (
	MarkOpen  = "\x1b[7m"
	MarkClose = "\x1b[27m"
)

// compile builds a case-insensitive matcher, returning nil on failure.
func compile(pattern string) *regexp.Regexp {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil
	}
	return re
}

// SearchRecords returns the records whose title, author, tag, or decimal
// page count matches term. A blank term is the identity: all records in
// their original order. Matching is OR across the four fields.
func SearchRecords(records []models.Record, term string, opts Options) []models.Record {
	if strings.TrimSpace(term) == "" {
		return records
	}

	var re *regexp.Regexp
	if opts.UseRegex {
		re = compile(term)
	}
	if re == nil {
		re = compile(regexp.QuoteMeta(term))
	}
	if re == nil {
		return records
	}

	result := make([]models.Record, 0, len(records))
	for _, r := range records {
		if matches(re, r) {
			result = append(result, r)
		}
	}
	return result
}

func matches(re *regexp.Regexp, r models.Record) bool {
	return re.MatchString(r.Title) ||
		re.MatchString(r.Author) ||
		re.MatchString(r.Tag) ||
		re.MatchString(strconv.Itoa(r.Pages))
}

// HighlightMatches wraps every case-insensitive literal occurrence of
// term inside text in the highlight markers. Empty term or text returns
// text unchanged.
func HighlightMatches(text, term string) string {
	if term == "" || text == "" {
		return text
	}
	re := compile(regexp.QuoteMeta(term))
	if re == nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return MarkOpen + m + MarkClose
	})
}

// MatchInfo returns the names of the fields of r that contain term as a
// case-insensitive literal, or nil if term is empty or nothing matches.
func MatchInfo(r models.Record, term string) []string {
	if term == "" {
		return nil
	}
	re := compile(regexp.QuoteMeta(term))
	if re == nil {
		return nil
	}

	var fields []string
	if re.MatchString(r.Title) {
		fields = append(fields, "title")
	}
	if re.MatchString(r.Author) {
		fields = append(fields, "author")
	}
	if re.MatchString(r.Tag) {
		fields = append(fields, "tag")
	}
	if re.MatchString(strconv.Itoa(r.Pages)) {
		fields = append(fields, "pages")
	}
	return fields
}
