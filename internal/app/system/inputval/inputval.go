// Package inputval validates and sanitizes registration submissions
// before anything reaches the store. Failures here are validation
// errors reported per field; they are never store errors.
package inputval

import (
	"regexp"
	"strings"

	"github.com/lnctu/sihportal/internal/app/system/skills"
	"github.com/microcosm-cc/bluemonday"
)

// phoneRe accepts international numbers: optional +, no leading zero,
// 8 to 15 digits total.
var phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{7,14}$`)

// strict strips all markup from free-text fields; registrant input is
// plain text everywhere it is displayed.
var strict = bluemonday.StrictPolicy()

const (
	minNameLen = 2
	maxNameLen = 100
)

// FieldError is a single validation failure, addressed to the input
// field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field errors for one submission.
type Errors []FieldError

func (e *Errors) add(field, msg string) {
	*e = append(*e, FieldError{Field: field, Message: msg})
}

// Clean strips markup and surrounding whitespace from a free-text
// value.
func Clean(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// CleanAll applies Clean to every entry, dropping ones that end up
// empty.
func CleanAll(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if c := Clean(v); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// ValidPhone reports whether p is an acceptable contact number.
func ValidPhone(p string) bool {
	return phoneRe.MatchString(strings.TrimSpace(p))
}

func checkName(errs *Errors, field, name string) {
	n := len([]rune(name))
	switch {
	case n == 0:
		errs.add(field, "is required")
	case n < minNameLen:
		errs.add(field, "is too short")
	case n > maxNameLen:
		errs.add(field, "is too long")
	}
}

func checkYear(errs *Errors, field, year string) {
	if !skills.ValidYear(year) {
		errs.add(field, "must be one of the offered year options")
	}
}

func checkBranch(errs *Errors, field, branch string) {
	if !skills.ValidBranch(branch) {
		errs.add(field, "must be one of the offered branch options")
	}
}

func checkSkills(errs *Errors, field string, list []string) {
	if len(list) == 0 {
		errs.add(field, "select at least one skill")
	}
}

func checkPhone(errs *Errors, field, phone string) {
	if !ValidPhone(phone) {
		errs.add(field, "must be a valid phone number")
	}
}
