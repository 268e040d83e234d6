package form

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// emailPattern is the WHATWG valid e-mail address production used by
// input type=email.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Validate checks a single value against the rules of f. Any non-empty
// value satisfies the required rule; email and URL values have surrounding
// whitespace stripped first.
func Validate(f Field, value string) error {
	spec, ok := byName[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}

	if spec.Kind == KindEmail || spec.Kind == KindURL {
		value = strings.TrimSpace(value)
	}
	if value == "" {
		if spec.Required {
			return &FieldError{Field: f, Reason: ErrRequired}
		}
		return nil
	}

	switch spec.Kind {
	case KindEmail:
		if !emailPattern.MatchString(value) {
			return &FieldError{Field: f, Reason: fmt.Errorf("%w: expected an address like name@example.com", ErrInvalidFormat)}
		}
	case KindURL:
		if !isURL(value) {
			return &FieldError{Field: f, Reason: fmt.Errorf("%w: expected an absolute http(s) URL", ErrInvalidFormat)}
		}
	}
	return nil
}

// ValidateStep validates every field owned by step. It returns a
// *ValidationError listing the offending fields, or nil. Step 3 owns no
// fields and always passes.
func ValidateStep(s State, step int) error {
	var errs []*FieldError
	for _, spec := range FieldsForStep(step) {
		if err := Validate(spec.Name, s.Get(spec.Name)); err != nil {
			if fe, ok := err.(*FieldError); ok {
				errs = append(errs, fe)
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Step: step, Fields: errs}
}

func isURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
