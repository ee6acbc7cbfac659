package validator

import (
	"strings"
	"unicode/utf8"
)

// Numeric is the set of types accepted by Between, Min and Max.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule represents a single constraint on an already type-checked value.
type Rule struct {
	Check func() bool
	Error Message
}

// Apply evaluates rules in order and returns a FieldError for the first one
// that fails, or nil when all pass. Checkers report one message per field,
// so later rules are not evaluated once one has failed.
func Apply(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return &FieldError{Tree: rule.Error}
		}
	}
	return nil
}

// NotBlank fails when value is empty after trimming whitespace, unless allowBlank is set.
func NotBlank(value string, allowBlank bool) Rule {
	return Rule{
		Check: func() bool {
			return allowBlank || strings.TrimSpace(value) != ""
		},
		Error: blank(),
	}
}

// LenBetween validates the rune length of value against [min, max].
func LenBetween(value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: lengthRange(min, max),
	}
}

// IntBetween validates an integer against the inclusive range [min, max].
func IntBetween(value, min, max int64) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: integerRange(min, max),
	}
}

// Between validates a number against the inclusive range [min, max].
func Between[T Numeric](value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: numericRange(float64(min), float64(max)),
	}
}

// NotEmpty fails when a collection has no elements, unless allowEmpty is set.
func NotEmpty(length int, allowEmpty bool) Rule {
	return Rule{
		Check: func() bool {
			return allowEmpty || length > 0
		},
		Error: empty(),
	}
}
