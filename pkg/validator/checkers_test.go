package validator_test

import (
	"encoding/json"
	"math"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramscheck/pkg/validator"
)

// single validates value as the only field "v" declared with spec.
func single(spec validator.Spec, value any) validator.Result {
	v := validator.New("single", func(b *validator.Builder) {
		b.Field("v", spec)
	})
	return v.Validate(map[string]any{"v": value}, nil)
}

type checkerCase struct {
	name  string
	value any
	want  any
	err   string
}

func runCheckerCases(t *testing.T, spec validator.Spec, tests []checkerCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := single(spec, tt.value)
			if tt.err != "" {
				require.False(t, res.Success)
				assert.Equal(t, tt.err, res.Errors.FieldErrors.Flatten()["v"])
				return
			}
			require.True(t, res.Success, "%v", res.Err())
			assert.Equal(t, tt.want, res.Value["v"])
		})
	}
}

func TestIntChecker(t *testing.T) {
	t.Parallel()

	const typeErr = "This field's type must be integer."
	runCheckerCases(t, validator.Int(), []checkerCase{
		{name: "int", value: 42, want: int64(42)},
		{name: "int8", value: int8(-3), want: int64(-3)},
		{name: "uint", value: uint(7), want: int64(7)},
		{name: "integral float", value: 12.0, want: int64(12)},
		{name: "json number", value: json.Number("15"), want: int64(15)},
		{name: "integral json float", value: json.Number("15.0"), want: int64(15)},
		{name: "fractional float", value: 1.5, err: typeErr},
		{name: "numeric string", value: "3", err: typeErr},
		{name: "bool", value: true, err: typeErr},
		{name: "nan", value: math.NaN(), err: typeErr},
		{name: "huge uint", value: uint64(math.MaxUint64), err: typeErr},
		{name: "above range", value: 2_000_000_001,
			err: "This integer field's value must be in range from -2000000000 to 2000000000."},
		{name: "at upper bound", value: 2_000_000_000, want: int64(2_000_000_000)},
	})
}

func TestIntChecker_MinBoundary(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.Int(validator.Min(10)), []checkerCase{
		{name: "below min", value: 9, err: "This integer field's value must be in range from 10 to 2000000000."},
		{name: "at min", value: 10, want: int64(10)},
	})
	runCheckerCases(t, validator.PositiveInt(validator.Max(9)), []checkerCase{
		{name: "negative", value: -1, err: "This integer field's value must be in range from 0 to 9."},
		{name: "at max", value: 9, want: int64(9)},
		{name: "above max", value: 10, err: "This integer field's value must be in range from 0 to 9."},
	})
}

func TestBigIntChecker(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.BigInt(), []checkerCase{
		{name: "beyond int range", value: int64(1_999_999_999_999), want: int64(1_999_999_999_999)},
		{name: "below range", value: int64(-2_000_000_000_001),
			err: "This integer field's value must be in range from -2000000000000 to 2000000000000."},
	})
	runCheckerCases(t, validator.PositiveBigInt(), []checkerCase{
		{name: "negative", value: -5,
			err: "This integer field's value must be in range from 0 to 2000000000000."},
	})
}

func TestNumChecker(t *testing.T) {
	t.Parallel()

	const typeErr = "This field's type must be numeric."
	runCheckerCases(t, validator.Num(), []checkerCase{
		{name: "float", value: 1.25, want: 1.25},
		{name: "int", value: 3, want: 3.0},
		{name: "float32", value: float32(0.5), want: 0.5},
		{name: "json number", value: json.Number("-7.5"), want: -7.5},
		{name: "string", value: "1.5", err: typeErr},
		{name: "infinity", value: math.Inf(1), err: typeErr},
		{name: "above range", value: 2_000_000_000.5,
			err: "This numeric field's value must be in range from -2000000000 to 2000000000."},
	})
	runCheckerCases(t, validator.Num(validator.Min(0.5), validator.Max(10.25)), []checkerCase{
		{name: "below fractional min", value: 0.25,
			err: "This numeric field's value must be in range from 0.5 to 10.25."},
		{name: "at fractional max", value: 10.25, want: 10.25},
	})
	runCheckerCases(t, validator.PositiveBigNum(), []checkerCase{
		{name: "large", value: 1.5e12, want: 1.5e12},
		{name: "negative", value: -0.01,
			err: "This numeric field's value must be in range from 0 to 2000000000000."},
	})
}

func TestStringChecker(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.String(), []checkerCase{
		{name: "plain", value: "ted", want: "ted"},
		{name: "keeps surrounding spaces", value: " ted ", want: " ted "},
		{name: "not a string", value: 333, err: "This field's type must be string."},
		{name: "bytes", value: []byte("x"), err: "This field's type must be string."},
		{name: "empty", value: "", err: "This field cannot be blank."},
		{name: "blank", value: "  \t", err: "This field cannot be blank."},
		{name: "too long", value: strings.Repeat("a", 256),
			err: "This string field's length must be in range from 0 to 255."},
		{name: "multibyte at limit", value: strings.Repeat("é", 255), want: strings.Repeat("é", 255)},
	})
	runCheckerCases(t, validator.String(validator.AllowBlank(), validator.MinLength(2)), []checkerCase{
		{name: "blank allowed but too short", value: "", err: "This string field's length must be in range from 2 to 255."},
		{name: "blank allowed", value: "  ", want: "  "},
	})
	runCheckerCases(t, validator.Text(), []checkerCase{
		{name: "long text", value: strings.Repeat("a", 30000), want: strings.Repeat("a", 30000)},
		{name: "too long", value: strings.Repeat("a", 30001),
			err: "This string field's length must be in range from 0 to 30000."},
	})
}

func TestEmailChecker(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.Email(), []checkerCase{
		{name: "valid", value: "ted@rexy.tech", want: "ted@rexy.tech"},
		{name: "plus address", value: "ted+1@rexy.tech", want: "ted+1@rexy.tech"},
		{name: "missing at", value: "ted.rexy.tech", err: "Invalid email."},
		{name: "empty", value: "", err: "Invalid email."},
		{name: "not a string", value: 1, err: "Invalid email."},
	})
}

func TestUUIDChecker(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	runCheckerCases(t, validator.UUID(), []checkerCase{
		{name: "string", value: id.String(), want: id},
		{name: "uuid", value: id, want: id},
		{name: "malformed", value: "1b4e28ba", err: "Invalid uuid."},
		{name: "not a string", value: 12, err: "Invalid uuid."},
	})
}

func TestBoolChecker(t *testing.T) {
	t.Parallel()

	const typeErr = "This field's type must be boolean."
	runCheckerCases(t, validator.Bool(), []checkerCase{
		{name: "true", value: true, want: true},
		{name: "false", value: false, want: false},
		{name: "string true", value: "TRUE", want: true},
		{name: "string off", value: "off", want: false},
		{name: "string yes", value: " yes ", want: true},
		{name: "string 0", value: "0", want: false},
		{name: "one", value: 1, want: true},
		{name: "zero float", value: 0.0, want: false},
		{name: "two", value: 2, err: typeErr},
		{name: "word", value: "invalid_is_male", err: typeErr},
	})
}

func TestDateChecker(t *testing.T) {
	t.Parallel()

	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	runCheckerCases(t, validator.Date(), []checkerCase{
		{name: "iso", value: "2020-01-01", want: day},
		{name: "slashes", value: "2020/01/01", want: day},
		{name: "rfc3339 truncated", value: "2020-01-01T15:04:05Z", want: day},
		{name: "time value", value: time.Date(2020, 1, 1, 23, 59, 0, 0, time.UTC), want: day},
		{name: "invalid", value: "invalid_birth_day", err: "Invalid date."},
		{name: "impossible day", value: "2021-02-30", err: "Invalid date."},
		{name: "not a string", value: 20200101, err: "Invalid date."},
	})
}

func TestTimeChecker(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.Time(), []checkerCase{
		{name: "clock", value: "10:30", want: time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC)},
		{name: "clock seconds", value: "10:30:15", want: time.Date(0, 1, 1, 10, 30, 15, 0, time.UTC)},
		{name: "kitchen", value: "3:04PM", want: time.Date(0, 1, 1, 15, 4, 0, 0, time.UTC)},
		{name: "timestamp", value: "2020-01-01T10:30:00Z", want: time.Date(2020, 1, 1, 10, 30, 0, 0, time.UTC)},
		{name: "invalid", value: "25:99", err: "Invalid time."},
	})
}

func TestDateTimeChecker(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.DateTime(), []checkerCase{
		{name: "rfc3339", value: "2020-01-01T10:30:00Z", want: time.Date(2020, 1, 1, 10, 30, 0, 0, time.UTC)},
		{name: "space separated", value: "2020-01-01 10:30:00", want: time.Date(2020, 1, 1, 10, 30, 0, 0, time.UTC)},
		{name: "date only", value: "2020-01-01", want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "invalid", value: "yesterday", err: "Invalid datetime."},
		{name: "zero time", value: time.Time{}, err: "Invalid datetime."},
	})
}

func TestArrayChecker(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.Array(), []checkerCase{
		{name: "any slice", value: []any{1, "a"}, want: []any{1, "a"}},
		{name: "typed slice", value: []int{1, 2}, want: []any{1, 2}},
		{name: "array", value: [2]string{"a", "b"}, want: []any{"a", "b"}},
		{name: "empty", value: []any{}, err: "This field cannot be empty."},
		{name: "string", value: "a,b", err: "This field's type must be array."},
		{name: "map", value: map[string]any{"a": 1}, err: "This field's type must be array."},
	})
	runCheckerCases(t, validator.Array(validator.AllowEmpty()), []checkerCase{
		{name: "empty allowed", value: []string{}, want: []any{}},
	})
}

func TestHashChecker(t *testing.T) {
	t.Parallel()

	runCheckerCases(t, validator.Hash(), []checkerCase{
		{name: "map", value: map[string]any{"a": 1}, want: map[string]any{"a": 1}},
		{name: "empty map", value: map[string]any{}, want: map[string]any{}},
		{name: "string map", value: map[string]string{"a": "b"}, want: map[string]any{"a": "b"}},
		{name: "slice", value: []any{}, err: "This field's type must be hash."},
		{name: "string", value: "{}", err: "This field's type must be hash."},
	})
}

type fakeFile struct{ name string }

func (fakeFile) Open() (multipart.File, error) { return nil, nil }

func TestFileChecker(t *testing.T) {
	t.Parallel()

	header := &multipart.FileHeader{Filename: "avatar.png", Size: 10}
	runCheckerCases(t, validator.File(), []checkerCase{
		{name: "file header", value: header, want: header},
		{name: "file handle", value: fakeFile{name: "a"}, want: fakeFile{name: "a"}},
		{name: "nil header", value: (*multipart.FileHeader)(nil), err: "This field's type must be file."},
		{name: "string", value: "avatar.png", err: "This field's type must be file."},
	})
}

func TestAllowNil_AllTypes(t *testing.T) {
	t.Parallel()

	child := validator.New("child", func(b *validator.Builder) {
		b.Field("x", validator.Int())
	})
	specs := map[string]validator.Spec{
		"num":      validator.Num(validator.AllowNil()),
		"int":      validator.Int(validator.AllowNil()),
		"string":   validator.String(validator.AllowNil()),
		"email":    validator.Email(validator.AllowNil()),
		"bool":     validator.Bool(validator.AllowNil()),
		"date":     validator.Date(validator.AllowNil()),
		"array":    validator.Array(validator.AllowNil()),
		"hash":     validator.Hash(validator.AllowNil()),
		"nested":   validator.Nested(child, validator.AllowNil()),
		"nestedMn": validator.Nested(child, validator.Many(), validator.AllowNil()),
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := single(spec, nil)
			require.True(t, res.Success, "%v", res.Err())
			v, ok := res.Value["v"]
			assert.True(t, ok)
			assert.Nil(t, v)
		})
	}
}
