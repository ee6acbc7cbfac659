package validator

// Type tags a field's checker.
type Type string

const (
	TypeNum        Type = "num"
	TypeInt        Type = "int"
	TypeChar       Type = "char"
	TypeText       Type = "text"
	TypeEmail      Type = "email"
	TypeUUID       Type = "uuid"
	TypeBool       Type = "boolean"
	TypeDate       Type = "date"
	TypeTime       Type = "time"
	TypeDateTime   Type = "datetime"
	TypeArray      Type = "arr"
	TypeHash       Type = "hash"
	TypeNested     Type = "nested_hash"
	TypeNestedList Type = "nested_hashs"
	TypeFile       Type = "file"
)

// Spec describes one field. Specs are produced by the declaration functions
// (String, Int, Nested, ...) and copied into the schema, so a Spec obtained
// from a Schema never changes.
//
// Constraint fields only carry meaning for their matching Type: MinLength and
// MaxLength for char/text, Min and Max for num/int, AllowBlank for strings,
// AllowEmpty for arrays, Many and Child for nested objects.
type Spec struct {
	Type       Type
	Required   bool
	Default    any
	AllowNil   bool
	AllowBlank bool
	AllowEmpty bool
	MinLength  int
	MaxLength  int
	Min        float64
	Max        float64
	Many       bool
	Child      *Validator

	err      error
	declared bool
}

func (t Type) builtin() bool {
	switch t {
	case TypeNum, TypeInt, TypeChar, TypeText, TypeEmail, TypeUUID, TypeBool,
		TypeDate, TypeTime, TypeDateTime, TypeArray, TypeHash,
		TypeNested, TypeNestedList, TypeFile:
		return true
	}
	return false
}

// HasDefault reports whether a non-nil default is configured.
func (s Spec) HasDefault() bool { return s.Default != nil }

// Err returns the configuration error recorded by the declaration function.
func (s Spec) Err() error { return s.err }
