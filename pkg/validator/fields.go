package validator

import (
	"fmt"
	"strings"
)

// Absolute bounds enforced on declarations.
const (
	IntLimit       = 2_000_000_000
	BigIntLimit    = 2_000_000_000_000
	CharMaxLength  = 255
	TextMaxLength  = 30_000
	commonOptions  = optRequired | optDefault | optAllowNil
	numericOptions = optMin | optMax
	stringOptions  = optAllowBlank | optMinLength | optMaxLength
)

type declaration struct {
	typ     Type
	allowed optionKind

	integer   bool
	absMin    float64
	absMax    float64
	boundsMsg string

	maxLength int
	lengthMsg string
}

// Num declares a numeric field bounded to ±2,000,000,000.
func Num(opts ...FieldOption) Spec {
	return declare(numeric(false, -IntLimit, IntLimit), opts)
}

// BigNum declares a numeric field bounded to ±2,000,000,000,000.
func BigNum(opts ...FieldOption) Spec {
	return declare(numeric(false, -BigIntLimit, BigIntLimit), opts)
}

// PositiveNum declares a numeric field bounded to [0, 2,000,000,000].
func PositiveNum(opts ...FieldOption) Spec {
	return declare(numeric(false, 0, IntLimit), opts)
}

// PositiveBigNum declares a numeric field bounded to [0, 2,000,000,000,000].
func PositiveBigNum(opts ...FieldOption) Spec {
	return declare(numeric(false, 0, BigIntLimit), opts)
}

// Int declares an integer field bounded to ±2,000,000,000.
func Int(opts ...FieldOption) Spec {
	return declare(numeric(true, -IntLimit, IntLimit), opts)
}

// BigInt declares an integer field bounded to ±2,000,000,000,000.
func BigInt(opts ...FieldOption) Spec {
	return declare(numeric(true, -BigIntLimit, BigIntLimit), opts)
}

// PositiveInt declares an integer field bounded to [0, 2,000,000,000].
func PositiveInt(opts ...FieldOption) Spec {
	return declare(numeric(true, 0, IntLimit), opts)
}

// PositiveBigInt declares an integer field bounded to [0, 2,000,000,000,000].
func PositiveBigInt(opts ...FieldOption) Spec {
	return declare(numeric(true, 0, BigIntLimit), opts)
}

// String declares a short string field, 0 to 255 characters.
func String(opts ...FieldOption) Spec {
	return declare(declaration{
		typ:       TypeChar,
		allowed:   stringOptions,
		maxLength: CharMaxLength,
		lengthMsg: "Invalid char length.",
	}, opts)
}

// Text declares a long string field, 0 to 30,000 characters.
func Text(opts ...FieldOption) Spec {
	return declare(declaration{
		typ:       TypeText,
		allowed:   stringOptions,
		maxLength: TextMaxLength,
		lengthMsg: "Invalid text length.",
	}, opts)
}

// Email declares a field holding an email address.
func Email(opts ...FieldOption) Spec { return declare(declaration{typ: TypeEmail}, opts) }

// UUID declares a field holding a UUID; the value is coerced to uuid.UUID.
func UUID(opts ...FieldOption) Spec { return declare(declaration{typ: TypeUUID}, opts) }

// Bool declares a boolean field.
func Bool(opts ...FieldOption) Spec { return declare(declaration{typ: TypeBool}, opts) }

// Date declares a calendar date field.
func Date(opts ...FieldOption) Spec { return declare(declaration{typ: TypeDate}, opts) }

// Time declares a time-of-day field.
func Time(opts ...FieldOption) Spec { return declare(declaration{typ: TypeTime}, opts) }

// DateTime declares a timestamp field.
func DateTime(opts ...FieldOption) Spec { return declare(declaration{typ: TypeDateTime}, opts) }

// Hash declares a free-form mapping field. Its contents are not validated.
func Hash(opts ...FieldOption) Spec { return declare(declaration{typ: TypeHash}, opts) }

// File declares an uploaded file field.
func File(opts ...FieldOption) Spec { return declare(declaration{typ: TypeFile}, opts) }

// Array declares a flat array field. Elements are not validated.
func Array(opts ...FieldOption) Spec {
	return declare(declaration{typ: TypeArray, allowed: optAllowEmpty}, opts)
}

// Nested declares a field validated by child. With Many() the field holds a
// list of objects, each validated by child.
func Nested(child *Validator, opts ...FieldOption) Spec {
	spec := declare(declaration{typ: TypeNested, allowed: optMany}, opts)
	if spec.Many {
		spec.Type = TypeNestedList
	}
	spec.Child = child
	if spec.err == nil && child == nil {
		spec.err = &ConfigError{Message: "nested field requires a child validator"}
	}
	return spec
}

func numeric(integer bool, min, max float64) declaration {
	d := declaration{
		typ:       TypeNum,
		allowed:   numericOptions,
		integer:   integer,
		absMin:    min,
		absMax:    max,
		boundsMsg: "Invalid numeric value.",
	}
	if integer {
		d.typ = TypeInt
		d.boundsMsg = "Invalid integer value."
	}
	return d
}

func declare(d declaration, opts []FieldOption) Spec {
	o := fieldOptions{required: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	spec := Spec{
		Type:       d.typ,
		Required:   o.required,
		Default:    o.def,
		AllowNil:   o.allowNil,
		AllowBlank: o.allowBlank,
		AllowEmpty: o.allowEmpty,
		Many:       o.many,
		declared:   true,
	}

	if extra := o.set &^ (d.allowed | commonOptions); extra != 0 {
		spec.err = &ConfigError{Message: fmt.Sprintf("%s not supported by %s fields", describeOptions(extra), d.typ)}
		return spec
	}

	if d.maxLength > 0 {
		spec.MinLength, spec.MaxLength = 0, d.maxLength
		if o.set&optMinLength != 0 {
			spec.MinLength = o.minLength
		}
		if o.set&optMaxLength != 0 {
			spec.MaxLength = o.maxLength
		}
		if spec.MinLength < 0 || spec.MaxLength > d.maxLength || spec.MinLength > spec.MaxLength {
			spec.err = &ConfigError{Message: d.lengthMsg}
		}
	}

	if d.boundsMsg != "" {
		spec.Min, spec.Max = d.absMin, d.absMax
		if o.set&optMin != 0 {
			spec.Min = o.min
		}
		if o.set&optMax != 0 {
			spec.Max = o.max
		}
		switch {
		case d.integer && (o.minFloat || o.maxFloat):
			spec.err = &ConfigError{Message: "This field's type must be integer."}
		case spec.Min < d.absMin || spec.Max > d.absMax || spec.Min > spec.Max:
			spec.err = &ConfigError{Message: d.boundsMsg}
		}
	}

	return spec
}

func describeOptions(set optionKind) string {
	var names []string
	for k := optRequired; k <= optMany; k <<= 1 {
		if set&k != 0 {
			names = append(names, optionNames[k])
		}
	}
	if len(names) == 1 {
		return "option " + names[0] + " is"
	}
	return "options " + strings.Join(names, ", ") + " are"
}
