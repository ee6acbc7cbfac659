package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"
)

// The rules below are not used by the built-in checkers. They are meant for
// custom field checks:
//
//	b.CheckValue("status", func(_ validator.Context, v any) (any, error) {
//	    return v, validator.Apply(validator.InList(v.(string), "draft", "published"))
//	})

// InList validates that value is one of allowed.
func InList[T comparable](value T, allowed ...T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: Message{
			Text:   "This field's value is not allowed.",
			Code:   CodeInList,
			Params: map[string]any{"allowed": allowed},
		},
	}
}

// NotInList validates that value is none of forbidden.
func NotInList[T comparable](value T, forbidden ...T) Rule {
	return Rule{
		Check: func() bool { return !slices.Contains(forbidden, value) },
		Error: Message{
			Text:   "This field's value is reserved.",
			Code:   CodeNotInList,
			Params: map[string]any{"forbidden": forbidden},
		},
	}
}

// Matches validates value against re. description names the expected format
// in the message, e.g. "slug".
func Matches(value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool { return re.MatchString(value) },
		Error: Message{
			Text:   fmt.Sprintf("This field must be a valid %s.", description),
			Code:   CodePattern,
			Params: map[string]any{"format": description},
		},
	}
}

// ValidURL validates an absolute URL with a scheme and a host.
func ValidURL(value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Error: invalid("URL", CodeURL),
	}
}

// PastDate validates that value is before now.
func PastDate(value time.Time) Rule {
	return Rule{
		Check: func() bool { return value.Before(time.Now()) },
		Error: Message{Text: "This date must be in the past.", Code: CodeDatePast},
	}
}

// FutureDate validates that value is after now.
func FutureDate(value time.Time) Rule {
	return Rule{
		Check: func() bool { return value.After(time.Now()) },
		Error: Message{Text: "This date must be in the future.", Code: CodeDateFuture},
	}
}

// DateBetween validates that value lies within [start, end].
func DateBetween(value, start, end time.Time) Rule {
	return Rule{
		Check: func() bool { return !value.Before(start) && !value.After(end) },
		Error: Message{
			Text: fmt.Sprintf("This date must be between %s and %s.",
				start.Format(time.DateOnly), end.Format(time.DateOnly)),
			Code: CodeDateRange,
			Params: map[string]any{
				"start": start.Format(time.DateOnly),
				"end":   end.Format(time.DateOnly),
			},
		},
	}
}
