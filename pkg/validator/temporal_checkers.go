package validator

import (
	"strings"
	"time"
)

var (
	dateLayouts = []string{
		time.DateOnly,
		"2006/01/02",
		"02-01-2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		time.RFC3339,
		time.DateTime,
	}

	clockLayouts = []string{
		"15:04",
		time.TimeOnly,
		"15:04:05.999999999",
		time.Kitchen,
		"3:04 PM",
	}

	dateTimeLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		time.DateTime,
		"2006-01-02 15:04",
		time.DateOnly,
	}
)

// checkDate coerces to midnight UTC of the given calendar day.
func checkDate(_ *Frame, _ string, _ Spec, raw any) Outcome {
	t, ok := parseTime(raw, dateLayouts)
	if !ok {
		return fail(invalid("date", CodeInvalidDate))
	}
	y, m, d := t.Date()
	return pass(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// checkTime accepts a clock time ("10:30", "3:04PM") or a full timestamp.
// Clock-only input is coerced to that time on January 1st of year 0, UTC.
func checkTime(_ *Frame, _ string, _ Spec, raw any) Outcome {
	if t, ok := parseTime(raw, clockLayouts); ok {
		return pass(t)
	}
	t, ok := parseTime(raw, dateTimeLayouts)
	if !ok {
		return fail(invalid("time", CodeInvalidTime))
	}
	return pass(t)
}

func checkDateTime(_ *Frame, _ string, _ Spec, raw any) Outcome {
	t, ok := parseTime(raw, dateTimeLayouts)
	if !ok {
		return fail(invalid("datetime", CodeInvalidDateTime))
	}
	return pass(t)
}

// parseTime passes time.Time through and parses strings with the first
// matching layout.
func parseTime(raw any, layouts []string) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v != nil && !v.IsZero() {
			return *v, true
		}
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
