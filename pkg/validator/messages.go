package validator

import (
	"fmt"
	"strconv"
)

// DefaultErrorMessage is the envelope message used when field errors are reported.
const DefaultErrorMessage = "Fields are not valid"

// InputErrorKey is the field-errors key under which a non-object input is reported.
const InputErrorKey = "error"

// Translation codes of the built-in messages.
const (
	CodeFieldsInvalid   = "validation.fields_invalid"
	CodeNotAnObject     = "validation.not_an_object"
	CodeRequired        = "validation.required"
	CodeBlank           = "validation.blank"
	CodeEmpty           = "validation.empty"
	CodeTooDeep         = "validation.too_deep"
	CodeIntegerRange    = "validation.range.integer"
	CodeNumericRange    = "validation.range.numeric"
	CodeStringLength    = "validation.length.string"
	CodeInvalidDate     = "validation.invalid.date"
	CodeInvalidTime     = "validation.invalid.time"
	CodeInvalidDateTime = "validation.invalid.datetime"
	CodeInvalidEmail    = "validation.invalid.email"
	CodeInvalidUUID     = "validation.invalid.uuid"
	CodeTypePrefix      = "validation.type."

	CodeInList     = "validation.in_list"
	CodeNotInList  = "validation.not_in_list"
	CodePattern    = "validation.pattern"
	CodeURL        = "validation.url"
	CodeDatePast   = "validation.date.past"
	CodeDateFuture = "validation.date.future"
	CodeDateRange  = "validation.date.range"
)

// Kind names used in type-mismatch messages.
const (
	KindString  = "string"
	KindInteger = "integer"
	KindNumeric = "numeric"
	KindBoolean = "boolean"
	KindArray   = "array"
	KindHash    = "hash"
	KindObject  = "object"
	KindFile    = "file"
)

func required() Message {
	return Message{Text: "This field is required.", Code: CodeRequired}
}

func blank() Message {
	return Message{Text: "This field cannot be blank.", Code: CodeBlank}
}

func empty() Message {
	return Message{Text: "This field cannot be empty.", Code: CodeEmpty}
}

func notAnObject() Message {
	return Message{Text: "Params must be an object.", Code: CodeNotAnObject}
}

func tooDeep(limit int) Message {
	return Message{
		Text:   fmt.Sprintf("This field is nested deeper than %d levels.", limit),
		Code:   CodeTooDeep,
		Params: map[string]any{"limit": limit},
	}
}

func typeMismatch(kind string) Message {
	return Message{
		Text: fmt.Sprintf("This field's type must be %s.", kind),
		Code: CodeTypePrefix + kind,
	}
}

func invalid(what, code string) Message {
	return Message{Text: fmt.Sprintf("Invalid %s.", what), Code: code}
}

func integerRange(min, max int64) Message {
	return Message{
		Text:   fmt.Sprintf("This integer field's value must be in range from %d to %d.", min, max),
		Code:   CodeIntegerRange,
		Params: map[string]any{"min": min, "max": max},
	}
}

func numericRange(min, max float64) Message {
	return Message{
		Text: fmt.Sprintf("This numeric field's value must be in range from %s to %s.",
			FormatNumber(min), FormatNumber(max)),
		Code:   CodeNumericRange,
		Params: map[string]any{"min": min, "max": max},
	}
}

func lengthRange(min, max int) Message {
	return Message{
		Text:   fmt.Sprintf("This string field's length must be in range from %d to %d.", min, max),
		Code:   CodeStringLength,
		Params: map[string]any{"min_length": min, "max_length": max},
	}
}

// FormatNumber renders a float without exponent or trailing zeros:
// 10 -> "10", 10.5 -> "10.5", -2e9 -> "-2000000000".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
