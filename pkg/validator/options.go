package validator

import "reflect"

// FieldOption configures a field declaration.
type FieldOption func(*fieldOptions)

type optionKind uint16

const (
	optRequired optionKind = 1 << iota
	optDefault
	optAllowNil
	optAllowBlank
	optAllowEmpty
	optMinLength
	optMaxLength
	optMin
	optMax
	optMany
)

var optionNames = map[optionKind]string{
	optRequired:   "required",
	optDefault:    "default",
	optAllowNil:   "allow_nil",
	optAllowBlank: "allow_blank",
	optAllowEmpty: "allow_empty",
	optMinLength:  "min_length",
	optMaxLength:  "max_length",
	optMin:        "min",
	optMax:        "max",
	optMany:       "many",
}

type fieldOptions struct {
	set optionKind

	required   bool
	def        any
	allowNil   bool
	allowBlank bool
	allowEmpty bool
	minLength  int
	maxLength  int
	min        float64
	max        float64
	minFloat   bool
	maxFloat   bool
	many       bool
}

// Required sets whether the field must be present. Fields are required by default.
func Required(v bool) FieldOption {
	return func(o *fieldOptions) {
		o.set |= optRequired
		o.required = v
	}
}

// Optional is shorthand for Required(false).
func Optional() FieldOption {
	return Required(false)
}

// Default sets the value injected when the field is absent or null.
// A non-nil default satisfies the required check.
func Default(v any) FieldOption {
	return func(o *fieldOptions) {
		o.set |= optDefault
		o.def = v
	}
}

// AllowNil accepts an explicit null and skips every other check for it.
func AllowNil() FieldOption {
	return func(o *fieldOptions) {
		o.set |= optAllowNil
		o.allowNil = true
	}
}

// AllowBlank accepts whitespace-only strings.
func AllowBlank() FieldOption {
	return func(o *fieldOptions) {
		o.set |= optAllowBlank
		o.allowBlank = true
	}
}

// AllowEmpty accepts arrays without elements.
func AllowEmpty() FieldOption {
	return func(o *fieldOptions) {
		o.set |= optAllowEmpty
		o.allowEmpty = true
	}
}

// MinLength sets the minimum string length in characters.
func MinLength(n int) FieldOption {
	return func(o *fieldOptions) {
		o.set |= optMinLength
		o.minLength = n
	}
}

// MaxLength sets the maximum string length in characters.
func MaxLength(n int) FieldOption {
	return func(o *fieldOptions) {
		o.set |= optMaxLength
		o.maxLength = n
	}
}

// Min sets the inclusive lower bound of a numeric field. Integer fields
// reject floating-point bounds.
func Min[T Numeric](v T) FieldOption {
	return func(o *fieldOptions) {
		o.set |= optMin
		o.min = float64(v)
		o.minFloat = isFloatKind(v)
	}
}

// Max sets the inclusive upper bound of a numeric field. Integer fields
// reject floating-point bounds.
func Max[T Numeric](v T) FieldOption {
	return func(o *fieldOptions) {
		o.set |= optMax
		o.max = float64(v)
		o.maxFloat = isFloatKind(v)
	}
}

// Many turns a nested object field into a list of nested objects.
func Many() FieldOption {
	return func(o *fieldOptions) {
		o.set |= optMany
		o.many = true
	}
}

func isFloatKind[T Numeric](v T) bool {
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}
