package validation

// RecordInput carries raw (form-shaped) field values for a catalog
// record. Pages stays a string here: its string form is what the pages
// rule is defined on.
type RecordInput struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Pages     string `json:"pages"`
	Tag       string `json:"tag"`
	DateAdded string `json:"dateAdded"`
}

// FieldError is one field's validation failure.
type FieldError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// RecordResult aggregates the outcome of validating a whole record.
// Errors and Warnings are keyed by field name. Warnings never affect
// Valid.
type RecordResult struct {
	Valid    bool                  `json:"valid"`
	Errors   map[string]FieldError `json:"errors"`
	Warnings map[string]string     `json:"warnings"`
}

// ValidateRecord runs every field validator independently, without
// short-circuiting, so a caller can show all problems at once. The
// author warning, if any, is reported separately from errors.
func ValidateRecord(in RecordInput) RecordResult {
	errs := make(map[string]FieldError)
	warnings := make(map[string]string)

	if r := ValidateTitle(in.Title); !r.Valid {
		errs["title"] = FieldError{Code: r.Code, Message: r.Message}
	}

	if r := ValidateAuthor(in.Author); !r.Valid {
		errs["author"] = FieldError{Code: r.Code, Message: r.Message}
	} else if r.Warning != "" {
		warnings["author"] = r.Warning
	}

	if r := ValidatePages(in.Pages); !r.Valid {
		errs["pages"] = FieldError{Code: r.Code, Message: r.Message}
	}

	if r := ValidateDate(in.DateAdded); !r.Valid {
		errs["dateAdded"] = FieldError{Code: r.Code, Message: r.Message}
	}

	if r := ValidateTag(in.Tag); !r.Valid {
		errs["tag"] = FieldError{Code: r.Code, Message: r.Message}
	}

	return RecordResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
