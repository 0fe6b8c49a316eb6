package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{name: "ok simple", input: "alice", valid: true},
		{name: "ok with digits and underscore", input: "alice_42", valid: true},
		{name: "empty", input: "", valid: false, code: CodeRequired},
		{name: "blank", input: "   ", valid: false, code: CodeRequired},
		{name: "leading space", input: " alice", valid: false, code: CodeFormat},
		{name: "trailing space", input: "alice ", valid: false, code: CodeFormat},
		{name: "illegal char", input: "alice!", valid: false, code: CodeFormat},
		{name: "interior space", input: "al ice", valid: false, code: CodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateUsername(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, r.Code)
				assert.NotEmpty(t, r.Message)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{name: "ok", input: "a@x.com", valid: true},
		{name: "ok subdomain", input: "a.b@mail.example.org", valid: true},
		{name: "empty", input: "", valid: false, code: CodeRequired},
		{name: "no at", input: "ax.com", valid: false, code: CodeFormat},
		{name: "no dot in domain", input: "a@xcom", valid: false, code: CodeFormat},
		{name: "whitespace", input: "a @x.com", valid: false, code: CodeFormat},
		{name: "two ats", input: "a@b@x.com", valid: false, code: CodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateEmail(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, r.Code)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{name: "ok", input: "Passw0rd", valid: true},
		{name: "empty", input: "", valid: false, code: CodeRequired},
		{name: "too short", input: "Pw0rd", valid: false, code: CodeFormat},
		{name: "no uppercase", input: "passw0rd", valid: false, code: CodeFormat},
		{name: "no lowercase", input: "PASSW0RD", valid: false, code: CodeFormat},
		{name: "no digit", input: "Password", valid: false, code: CodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidatePassword(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, r.Code)
			}
		})
	}
}

func TestValidatePasswordMatch(t *testing.T) {
	assert.True(t, ValidatePasswordMatch("Passw0rd", "Passw0rd").Valid)

	r := ValidatePasswordMatch("Passw0rd", "passw0rd")
	assert.False(t, r.Valid)
	assert.Equal(t, CodeMismatch, r.Code)
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{name: "ok", input: "Dune", valid: true},
		{name: "ok single char", input: "X", valid: true},
		{name: "ok interior anything", input: "A  very --- odd!  title", valid: true},
		{name: "empty", input: "", valid: false, code: CodeRequired},
		{name: "blank", input: "  ", valid: false, code: CodeRequired},
		{name: "leading space", input: " Dune", valid: false, code: CodeFormat},
		{name: "trailing space", input: "Dune ", valid: false, code: CodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateTitle(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, r.Code)
			}
		})
	}
}

func TestValidateAuthor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		warning bool
	}{
		{name: "ok", input: "Frank Herbert", valid: true},
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "repeated surname", input: "Smith Smith", valid: true, warning: true},
		{name: "repeated case-insensitive", input: "smith SMITH", valid: true, warning: true},
		{name: "repeated later in name", input: "John Smith Smith", valid: true, warning: true},
		{name: "not consecutive", input: "Smith John Smith", valid: true},
		{name: "prefix only", input: "Smith Smithson", valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateAuthor(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if tt.warning {
				assert.NotEmpty(t, r.Warning)
			} else {
				assert.Empty(t, r.Warning)
			}
		})
	}
}

func TestValidatePages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{name: "zero", input: "0", valid: true},
		{name: "positive", input: "412", valid: true},
		{name: "empty", input: "", valid: false, code: CodeRequired},
		{name: "negative", input: "-1", valid: false, code: CodeFormat},
		{name: "leading zero", input: "01", valid: false, code: CodeFormat},
		{name: "decimal point", input: "1.5", valid: false, code: CodeFormat},
		{name: "leading plus", input: "+5", valid: false, code: CodeFormat},
		{name: "not a number", input: "x", valid: false, code: CodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidatePages(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, r.Code)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{name: "ok", input: "2024-01-15", valid: true},
		{name: "leap day", input: "2024-02-29", valid: true},
		{name: "empty", input: "", valid: false, code: CodeRequired},
		{name: "wrong layout", input: "15-01-2024", valid: false, code: CodeFormat},
		{name: "month 13", input: "2024-13-01", valid: false, code: CodeFormat},
		{name: "day 32", input: "2024-01-32", valid: false, code: CodeFormat},
		{name: "february 30th", input: "2024-02-30", valid: false, code: CodeFormat},
		{name: "non leap february 29th", input: "2023-02-29", valid: false, code: CodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateDate(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, r.Code)
			}
		})
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{name: "single word", input: "Drama", valid: true},
		{name: "spaced words", input: "Science Fiction", valid: true},
		{name: "hyphenated", input: "Sci-Fi", valid: true},
		{name: "empty", input: "", valid: false, code: CodeRequired},
		{name: "digits", input: "SciFi2", valid: false, code: CodeFormat},
		{name: "leading separator", input: "-Drama", valid: false, code: CodeFormat},
		{name: "trailing separator", input: "Drama ", valid: false, code: CodeFormat},
		{name: "double separator", input: "Sci  Fi", valid: false, code: CodeFormat},
		{name: "punctuation", input: "Drama!", valid: false, code: CodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateTag(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, r.Code)
			}
		})
	}
}
