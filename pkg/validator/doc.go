// Package validator validates and coerces structured request parameters
// against a schema declared in Go code.
//
// A Validator owns a schema of named fields. Each field is declared with a
// declaration function (String, Int, Email, Nested, ...) and functional
// options (Optional, Default, MinLength, Max, ...). Validation never stops at
// the first problem: every field is checked and every failure is reported in
// a path-addressable error tree.
//
// # Declaring a schema
//
//	address := validator.New("address", func(b *validator.Builder) {
//	    b.Field("street", validator.String())
//	    b.Field("zip", validator.String(validator.MaxLength(10), validator.Optional()))
//	})
//
//	user := validator.New("user", func(b *validator.Builder) {
//	    b.Field("name", validator.String(validator.MinLength(2)))
//	    b.Field("age", validator.PositiveInt(validator.Max(150)))
//	    b.Field("role", validator.String(validator.Default("member")))
//	    b.Field("addresses", validator.Nested(address, validator.Many()))
//
//	    b.CheckValue("name", func(c validator.Context, v any) (any, error) {
//	        return strings.TrimSpace(v.(string)), nil
//	    })
//	    b.CheckObject(func(c validator.Context, values map[string]any) (map[string]any, error) {
//	        if !c.Bool("is_admin") && values["role"] == "admin" {
//	            return nil, validator.NewGeneralError("Permission denied.")
//	        }
//	        return nil, nil
//	    })
//	})
//
// # Validation phases
//
// One call runs, in order: the input shape check; default injection, presence
// and type checks for every field; custom field checks for fields that passed;
// the whole-object check when no type errors were found. Values come back
// coerced (int64 for integer fields, float64 for numeric fields, time.Time
// for temporal fields, uuid.UUID for UUIDs).
//
// # Errors
//
// Field errors are data: they are collected into a Node keyed by field name.
// Nested objects contribute their own Node, lists of nested objects an
// IndexedList with nil for elements that passed. A GeneralError rejects the
// whole object: it bubbles unchanged through nested validators and is turned
// into a "general" Envelope by the outermost call, discarding field errors.
//
//	res := user.Validate(input, validator.Context{"is_admin": false})
//	if !res.Success {
//	    body, _ := json.Marshal(res.Errors)
//	    // {"message":"Fields are not valid","error_type":"fields","field_errors":{...}}
//	}
//
// Mistakes in a declaration (unsupported options, bounds out of range) are
// ConfigErrors. Schema returns them; Call panics with them.
package validator
