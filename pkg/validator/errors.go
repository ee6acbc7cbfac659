package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("invalid field declaration")

	// ErrFieldInvalid is wrapped by every FieldError.
	ErrFieldInvalid = errors.New("field is not valid")

	// ErrRejected is wrapped by every GeneralError.
	ErrRejected = errors.New("params rejected")

	// ErrValidationFailed is returned by Result.Err when field errors were collected.
	ErrValidationFailed = errors.New("validation failed")
)

// ConfigError reports a mistake in a schema declaration. It is detected when
// the schema is built and is never recovered by the engine.
type ConfigError struct {
	Validator string
	Field     string
	Message   string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Validator != "" && e.Field != "":
		return fmt.Sprintf("%s: %s.%s: %s", ErrInvalidConfig, e.Validator, e.Field, e.Message)
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Message)
	default:
		return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Message)
	}
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// FieldError rejects a single field. Custom field checks return it to attach
// a message to the field being checked; the whole-object check may return one
// built with NewFieldErrors to attach messages to several fields at once.
type FieldError struct {
	Tree ErrorTree
}

// NewFieldError returns a field-level rejection with the given message.
func NewFieldError(message string) *FieldError {
	return &FieldError{Tree: Message{Text: message}}
}

// NewFieldErrors returns a field-level rejection carrying one message per field.
func NewFieldErrors(errs map[string]string) *FieldError {
	node := make(Node, len(errs))
	for k, v := range errs {
		node[k] = Message{Text: v}
	}
	return &FieldError{Tree: node}
}

func (e *FieldError) Error() string {
	if m, ok := e.Tree.(Message); ok {
		return m.Text
	}
	return ErrFieldInvalid.Error()
}

func (e *FieldError) Unwrap() error { return ErrFieldInvalid }

// GeneralError rejects the whole object. It discards field-level detail and
// bubbles through nested validators up to the outermost call.
type GeneralError struct {
	Message string
	Code    string
}

// NewGeneralError returns a whole-object rejection with the given message.
func NewGeneralError(message string) *GeneralError {
	return &GeneralError{Message: message}
}

func (e *GeneralError) Error() string { return e.Message }

func (e *GeneralError) Unwrap() error { return ErrRejected }
