package validator

import (
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// emailValidate is safe for concurrent use and caches its tag parsing.
var emailValidate = playground.New()

// checkString runs type, blank and length checks in that order and reports
// the first failure.
func checkString(_ *Frame, _ string, spec Spec, raw any) Outcome {
	s, ok := raw.(string)
	if !ok {
		return fail(typeMismatch(KindString))
	}
	if err := Apply(
		NotBlank(s, spec.AllowBlank),
		LenBetween(s, spec.MinLength, spec.MaxLength),
	); err != nil {
		return failWith(err)
	}
	return pass(s)
}

func checkEmail(_ *Frame, _ string, _ Spec, raw any) Outcome {
	s, ok := raw.(string)
	if !ok {
		return fail(invalid("email", CodeInvalidEmail))
	}
	if err := Apply(ValidEmail(s)); err != nil {
		return failWith(err)
	}
	return pass(s)
}

// ValidEmail validates value against the email address grammar.
func ValidEmail(value string) Rule {
	return Rule{
		Check: func() bool {
			return emailValidate.Var(value, "required,email") == nil
		},
		Error: invalid("email", CodeInvalidEmail),
	}
}

func checkUUID(_ *Frame, _ string, _ Spec, raw any) Outcome {
	switch v := raw.(type) {
	case uuid.UUID:
		return pass(v)
	case string:
		id, err := uuid.Parse(v)
		if err == nil {
			return pass(id)
		}
	}
	return fail(invalid("uuid", CodeInvalidUUID))
}

// checkBool accepts booleans, 1/0 and the usual string spellings.
func checkBool(_ *Frame, _ string, _ Spec, raw any) Outcome {
	switch v := raw.(type) {
	case bool:
		return pass(v)
	case string:
		if b, ok := boolStrings[strings.ToLower(strings.TrimSpace(v))]; ok {
			return pass(b)
		}
	default:
		if n, ok := toInt(raw); ok && (n == 0 || n == 1) {
			return pass(n == 1)
		}
	}
	return fail(typeMismatch(KindBoolean))
}

var boolStrings = map[string]bool{
	"true": true, "t": true, "1": true, "yes": true, "y": true, "on": true,
	"false": false, "f": false, "0": false, "no": false, "n": false, "off": false,
}
