package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// space is the browser's whitespace class; RE2's \s only covers ASCII.
const space = `\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	emailPattern = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9` + space + `\-()]{7,15}$`)
)

// Rule checks a single value and returns an error message, or "" when valid.
type Rule func(value string) string

// Required fails on blank input.
func Required(message string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// MinLength fails when the trimmed value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
			return message
		}
		return ""
	}
}

// Email fails when the trimmed value is not shaped like an address.
func Email(message string) Rule {
	return func(value string) string {
		if !emailPattern.MatchString(strings.TrimSpace(value)) {
			return message
		}
		return ""
	}
}

// OptionalPhone passes blank input and otherwise checks the phone pattern.
func OptionalPhone(message string) Rule {
	return func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return ""
		}
		if !phonePattern.MatchString(trimmed) {
			return message
		}
		return ""
	}
}

// Chain evaluates rules in order and returns the first failure.
func Chain(rules ...Rule) Rule {
	return func(value string) string {
		for _, r := range rules {
			if msg := r(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

var contactRules = map[FieldName]Rule{
	FieldFullName: Chain(
		Required("Full name is required."),
		MinLength(3, "Full name must be at least 3 characters."),
	),
	FieldEmail: Chain(
		Required("Email is required."),
		Email("Please enter a valid email address."),
	),
	FieldPhone: OptionalPhone("Phone number must contain only numbers and basic symbols."),
	FieldMessage: Chain(
		Required("Message is required."),
		MinLength(10, "Message must be at least 10 characters."),
	),
}

// ValidateField runs the rule chain for name. Fields without rules are valid.
func ValidateField(name FieldName, value string) string {
	rule, ok := contactRules[name]
	if !ok {
		return ""
	}
	return rule(value)
}

// ComputeErrors validates every field in values. The result only holds
// failing fields, so an empty map means the form is valid.
func ComputeErrors(values Values) Errors {
	errs := make(Errors)
	for _, f := range Fields {
		if msg := ValidateField(f, values[f]); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}
