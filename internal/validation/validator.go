package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Result is the outcome of a single field validator. A failed result
// carries a Code and a user-facing Message. Warning is advisory and never
// implies failure.
type Result struct {
	Valid   bool
	Code    Code
	Message string
	Warning string
}

func ok() Result { return Result{Valid: true} }

func fail(c Code, msg string) Result { return Result{Code: c, Message: msg} }

func okWarning(warning string) Result { return Result{Valid: true, Warning: warning} }

const (
	msgRequired      = "This field is required"
	msgUsername      = "Username must contain only letters, numbers, and underscores"
	msgUsernameSpace = "Username cannot have leading or trailing spaces"
	msgEmail         = "Please enter a valid email address"
	msgPassword      = "Password must be at least 8 characters with uppercase, lowercase, and number"
	msgPasswordMatch = "Passwords do not match"
	msgTitle         = "Title cannot have leading or trailing spaces"
	msgPages         = "Pages must be a non-negative integer"
	msgDate          = "Date must be in YYYY-MM-DD format"
	msgDateInvalid   = "Invalid date (e.g., February 30th)"
	msgTag           = "Tag must contain only letters, spaces, or hyphens"
	msgAuthorRepeat  = `Author name appears to have repeated surname (e.g., "Smith Smith")`
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	// Deliberately permissive, non-RFC email shape: local@domain with a
	// dot in the domain and no whitespace. Tightening it could reject
	// previously accepted accounts on restore.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	titlePattern = regexp.MustCompile(`^\S(?s:.*\S)?$`)
	pagesPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
	datePattern  = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
	tagPattern   = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)

	wordPattern = regexp.MustCompile(`[0-9A-Za-z_]+`)
)

// ValidateUsername accepts non-blank strings of letters, digits, and
// underscores, with no surrounding whitespace.
func ValidateUsername(username string) Result {
	if strings.TrimSpace(username) == "" {
		return fail(CodeRequired, msgRequired)
	}
	if username != strings.TrimSpace(username) {
		return fail(CodeFormat, msgUsernameSpace)
	}
	if !usernamePattern.MatchString(username) {
		return fail(CodeFormat, msgUsername)
	}
	return ok()
}

// ValidateEmail checks the permissive local@domain.tld shape.
func ValidateEmail(email string) Result {
	if strings.TrimSpace(email) == "" {
		return fail(CodeRequired, msgRequired)
	}
	if !emailPattern.MatchString(email) {
		return fail(CodeFormat, msgEmail)
	}
	return ok()
}

// ValidatePassword requires at least 8 characters including one lowercase
// letter, one uppercase letter, and one digit. The original rule is a
// lookahead regex; RE2 has no lookaheads, so the classes are checked
// explicitly with identical acceptance.
func ValidatePassword(password string) Result {
	if password == "" {
		return fail(CodeRequired, msgRequired)
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if len([]rune(password)) < 8 || !lower || !upper || !digit {
		return fail(CodeFormat, msgPassword)
	}
	return ok()
}

// ValidatePasswordMatch fails unless both strings are identical.
func ValidatePasswordMatch(password, confirm string) Result {
	if password != confirm {
		return fail(CodeMismatch, msgPasswordMatch)
	}
	return ok()
}

// ValidateTitle accepts any non-blank string without leading or trailing
// whitespace. A single non-whitespace character is valid.
func ValidateTitle(title string) Result {
	if strings.TrimSpace(title) == "" {
		return fail(CodeRequired, msgRequired)
	}
	if !titlePattern.MatchString(title) {
		return fail(CodeFormat, msgTitle)
	}
	return ok()
}

// ValidateAuthor requires a non-blank author and emits a non-blocking
// warning when the same word appears twice in a row (case-insensitive),
// a heuristic for accidentally doubled surnames.
func ValidateAuthor(author string) Result {
	if strings.TrimSpace(author) == "" {
		return fail(CodeRequired, msgRequired)
	}
	if hasRepeatedWord(author) {
		return okWarning(msgAuthorRepeat)
	}
	return ok()
}

// hasRepeatedWord reports whether two consecutive word tokens, separated
// only by whitespace, are equal ignoring case. RE2 has no backreferences,
// so the token scan replaces the original \b(\w+)\s+\1\b pattern.
func hasRepeatedWord(s string) bool {
	locs := wordPattern.FindAllStringIndex(s, -1)
	for i := 1; i < len(locs); i++ {
		sep := s[locs[i-1][1]:locs[i][0]]
		if sep == "" || strings.TrimSpace(sep) != "" {
			continue
		}
		prev := s[locs[i-1][0]:locs[i-1][1]]
		cur := s[locs[i][0]:locs[i][1]]
		if strings.EqualFold(prev, cur) {
			return true
		}
	}
	return false
}

// ValidatePages accepts the decimal string form of a non-negative integer
// with no leading zero, no sign, and no fractional part.
func ValidatePages(pages string) Result {
	if pages == "" {
		return fail(CodeRequired, msgRequired)
	}
	if !pagesPattern.MatchString(pages) {
		return fail(CodeFormat, msgPages)
	}
	return ok()
}

// ValidateDate accepts YYYY-MM-DD with month 01-12 and day 01-31, then
// rejects triples that do not reconstruct to a real calendar date, such
// as 2024-02-30.
func ValidateDate(date string) Result {
	if strings.TrimSpace(date) == "" {
		return fail(CodeRequired, msgRequired)
	}
	if !datePattern.MatchString(date) {
		return fail(CodeFormat, msgDate)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fail(CodeFormat, msgDateInvalid)
	}
	return ok()
}

// ValidateTag accepts one or more alphabetic words separated by single
// spaces or hyphens: no digits, no punctuation, no leading, trailing, or
// doubled separators.
func ValidateTag(tag string) Result {
	if strings.TrimSpace(tag) == "" {
		return fail(CodeRequired, msgRequired)
	}
	if !tagPattern.MatchString(tag) {
		return fail(CodeFormat, msgTag)
	}
	return ok()
}
