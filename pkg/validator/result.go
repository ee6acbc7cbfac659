package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorType distinguishes the two envelope shapes.
type ErrorType string

const (
	ErrorTypeGeneral ErrorType = "general"
	ErrorTypeFields  ErrorType = "fields"
)

// Envelope is the error report of an outermost call. A fields envelope always
// carries FieldErrors; a general envelope carries only a message.
type Envelope struct {
	Message     string    `json:"message"`
	Type        ErrorType `json:"error_type"`
	FieldErrors Node      `json:"field_errors,omitempty"`

	// Code is the translation code of Message, empty for custom rejections.
	Code string `json:"-"`
}

func (e *Envelope) Error() string {
	if e.Type == ErrorTypeGeneral || len(e.FieldErrors) == 0 {
		return e.Message
	}
	flat := e.FieldErrors.Flatten()
	parts := make([]string, 0, len(flat))
	for _, path := range slices.Sorted(maps.Keys(flat)) {
		parts = append(parts, fmt.Sprintf("%s: %s", path, flat[path]))
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

func (e *Envelope) Unwrap() error {
	if e.Type == ErrorTypeGeneral {
		return ErrRejected
	}
	return ErrValidationFailed
}

// Result is the outcome of one validation call.
//
// At the outermost call a failure is reported in Errors. A nested call never
// builds an envelope: it reports raw FieldErrors, or a Rejection that the
// caller must pass upward unchanged.
type Result struct {
	Success bool
	Value   map[string]any
	Errors  *Envelope

	FieldErrors Node
	Rejection   *GeneralError
}

// Err returns the failure as an error, or nil on success.
func (r Result) Err() error {
	switch {
	case r.Success:
		return nil
	case r.Errors != nil:
		return r.Errors
	case r.Rejection != nil:
		return r.Rejection
	case r.FieldErrors != nil:
		return &FieldError{Tree: r.FieldErrors}
	}
	return ErrValidationFailed
}

func fieldsEnvelope(errs Node) *Envelope {
	return &Envelope{
		Message:     DefaultErrorMessage,
		Type:        ErrorTypeFields,
		FieldErrors: errs,
		Code:        CodeFieldsInvalid,
	}
}

func generalEnvelope(rej *GeneralError) *Envelope {
	return &Envelope{
		Message: rej.Message,
		Type:    ErrorTypeGeneral,
		Code:    rej.Code,
	}
}
