package validator

import (
	"errors"
	"fmt"
	"slices"
)

// Context is caller-supplied ambient data (permission flags, the current
// user, ...). It is never validated, only forwarded to every nested
// validator and every custom check.
type Context map[string]any

// Bool returns the boolean stored under key, or false.
func (c Context) Bool(key string) bool {
	v, _ := c[key].(bool)
	return v
}

// String returns the string stored under key, or "".
func (c Context) String(key string) string {
	v, _ := c[key].(string)
	return v
}

// FieldCheck is a custom check for one field. It receives the coerced value
// and the type-checked values of all fields, and returns the (possibly
// transformed) value. Returning a *FieldError rejects the field; returning a
// *GeneralError rejects the whole object.
type FieldCheck func(c Context, value any, values map[string]any) (any, error)

// ObjectCheck is the whole-object check. It receives all values after the
// field checks and returns the final value map; a nil map keeps values as is.
type ObjectCheck func(c Context, values map[string]any) (map[string]any, error)

// Schema is the ordered set of field declarations of a validator.
type Schema struct {
	names  []string
	fields map[string]Spec
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string { return slices.Clone(s.names) }

// Field returns the declaration of name.
func (s *Schema) Field(name string) (Spec, bool) {
	spec, ok := s.fields[name]
	return spec, ok
}

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.names) }

// Builder collects field declarations and custom checks for a validator.
// It is handed to the definition function once, when the schema is built.
type Builder struct {
	schema *Schema
	checks map[string]FieldCheck
	object ObjectCheck
	errs   []error
}

func newBuilder() *Builder {
	return &Builder{
		schema: &Schema{fields: make(map[string]Spec)},
		checks: make(map[string]FieldCheck),
	}
}

// Field declares a field. Fields are validated in declaration order.
func (b *Builder) Field(name string, spec Spec) *Builder {
	switch {
	case name == "":
		b.errs = append(b.errs, &ConfigError{Message: "field name is empty"})
	case b.has(name):
		b.errs = append(b.errs, &ConfigError{Field: name, Message: "field is declared twice"})
	case name == InputErrorKey:
		b.errs = append(b.errs, &ConfigError{Field: name, Message: fmt.Sprintf("field name %q is reserved for input errors", InputErrorKey)})
	case spec.Type == "":
		b.errs = append(b.errs, &ConfigError{Field: name, Message: "field has no type, use a declaration function"})
	case spec.Type.builtin() && !spec.declared:
		b.errs = append(b.errs, &ConfigError{Field: name, Message: fmt.Sprintf("%s field must be built by its declaration function", spec.Type)})
	case spec.err != nil:
		var cerr *ConfigError
		if errors.As(spec.err, &cerr) {
			b.errs = append(b.errs, &ConfigError{Field: name, Message: cerr.Message})
		} else {
			b.errs = append(b.errs, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, spec.err))
		}
	default:
		b.schema.names = append(b.schema.names, name)
		b.schema.fields[name] = spec
	}
	return b
}

// Check registers a custom check for a declared field.
func (b *Builder) Check(name string, fn FieldCheck) *Builder {
	switch {
	case fn == nil:
		b.errs = append(b.errs, &ConfigError{Field: name, Message: "check function is nil"})
	case b.checks[name] != nil:
		b.errs = append(b.errs, &ConfigError{Field: name, Message: "check is registered twice"})
	default:
		b.checks[name] = fn
	}
	return b
}

// CheckValue registers a custom check that only needs the field's value.
func (b *Builder) CheckValue(name string, fn func(c Context, value any) (any, error)) *Builder {
	if fn == nil {
		return b.Check(name, nil)
	}
	return b.Check(name, func(c Context, value any, _ map[string]any) (any, error) {
		return fn(c, value)
	})
}

// CheckObject registers the whole-object check.
func (b *Builder) CheckObject(fn ObjectCheck) *Builder {
	switch {
	case fn == nil:
		b.errs = append(b.errs, &ConfigError{Message: "object check function is nil"})
	case b.object != nil:
		b.errs = append(b.errs, &ConfigError{Message: "object check is registered twice"})
	default:
		b.object = fn
	}
	return b
}

func (b *Builder) has(name string) bool {
	_, ok := b.schema.fields[name]
	return ok
}

// definition is the built, read-only form of a validator.
type definition struct {
	schema *Schema
	checks map[string]FieldCheck
	object ObjectCheck
}

func (b *Builder) build(validator string) (*definition, error) {
	for name := range b.checks {
		if !b.has(name) {
			b.errs = append(b.errs, &ConfigError{Field: name, Message: "check registered for an undeclared field"})
		}
	}
	if len(b.errs) > 0 {
		for _, err := range b.errs {
			var cerr *ConfigError
			if errors.As(err, &cerr) {
				cerr.Validator = validator
			}
		}
		return nil, errors.Join(b.errs...)
	}
	return &definition{schema: b.schema, checks: b.checks, object: b.object}, nil
}
