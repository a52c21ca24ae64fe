package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	EmailPattern    = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	UsernamePattern = `^[a-zA-Z0-9._\-]{3,50}$`

	// DocumentTypePattern keeps document types safe to embed in stored file names.
	DocumentTypePattern = `^[a-zA-Z0-9 _\-]+$`

	PasswordMinLength = 6

	DocumentTypeMaxLength = 50

	NameMinLength = 2
	NameMaxLength = 100

	RatingMin = 1
	RatingMax = 5
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	Username     *regexp.Regexp
	DocumentType *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	Username:     regexp.MustCompile(UsernamePattern),
	DocumentType: regexp.MustCompile(DocumentTypePattern),
}

// StringValidation checks a required string value against length and pattern rules
type StringValidation struct {
	Value   string
	MinLen  int
	MaxLen  int
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation. Surrounding whitespace is ignored.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: strings.TrimSpace(value)}
}

func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}
	if v.MinLen > 0 && len([]rune(v.Value)) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len([]rune(v.Value)) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// NumericValidation checks an integer against an inclusive range
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

func (v *NumericValidation) WithRange(min, max int) *NumericValidation {
	v.Min = min
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}

// ValidRating reports whether an interview feedback rating is in range.
func ValidRating(rating int) bool {
	return NewNumericValidation(rating).WithRange(RatingMin, RatingMax).Validate()
}

// ValidUsername reports whether a username uses only the allowed characters.
func ValidUsername(username string) bool {
	return NewStringValidation(username).WithPattern(CompiledPatterns.Username).Validate()
}

// ValidFullName reports whether a display name has a sensible length.
func ValidFullName(name string) bool {
	return NewStringValidation(name).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength).Validate()
}

// ValidEmail reports whether an email address looks deliverable.
func ValidEmail(email string) bool {
	return NewStringValidation(email).WithPattern(CompiledPatterns.Email).Validate()
}

// ValidDocumentType reports whether a document type can be used in a stored file name.
func ValidDocumentType(documentType string) bool {
	return NewStringValidation(documentType).
		WithMaxLength(DocumentTypeMaxLength).
		WithPattern(CompiledPatterns.DocumentType).
		Validate()
}
