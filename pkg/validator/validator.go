package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/dmitrymomot/paramscheck/pkg/logger"
)

// Validator validates one kind of object against a schema declared in Go code.
// The schema is built on first use and cached; a Validator is safe for
// concurrent use once constructed.
type Validator struct {
	name     string
	define   func(b *Builder)
	cfg      Config
	logger   *slog.Logger
	checkers map[Type]Checker

	once sync.Once
	def  *definition
	err  error
}

// New returns a validator whose schema is declared by define.
// define runs once, the first time the validator is used, so it may refer to
// validators (including the one being declared) that are assigned later.
func New(name string, define func(b *Builder), opts ...Option) *Validator {
	v := &Validator{
		name:     name,
		define:   define,
		cfg:      DefaultConfig(),
		logger:   discardLogger(),
		checkers: defaultCheckers(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Validator(name))
	return v
}

// Name returns the validator's name.
func (v *Validator) Name() string { return v.name }

// Schema builds the schema if needed and returns it, or the configuration
// errors found in the declaration.
func (v *Validator) Schema() (*Schema, error) {
	def, err := v.definition()
	if err != nil {
		return nil, err
	}
	return def.schema, nil
}

func (v *Validator) definition() (*definition, error) {
	v.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				v.def = nil
				v.err = &ConfigError{Validator: v.name, Message: fmt.Sprintf("schema definition panicked: %v", r)}
				v.logger.Error("schema declaration panicked", logger.Error(v.err))
			}
		}()
		b := newBuilder()
		if v.define != nil {
			v.define(b)
		}
		for _, name := range b.schema.names {
			spec := b.schema.fields[name]
			if _, ok := v.checkers[spec.Type]; !ok {
				b.errs = append(b.errs, &ConfigError{Field: name, Message: fmt.Sprintf("no checker for type %q", spec.Type)})
			}
		}
		v.def, v.err = b.build(v.name)
		if v.err != nil {
			v.logger.Error("schema declaration is invalid", logger.Error(v.err))
		}
	})
	return v.def, v.err
}

// Validate validates input as an outermost call.
func (v *Validator) Validate(input any, c Context) Result {
	return v.Call(input, c, true)
}

// Call validates input. An outermost call reports failures as an Envelope;
// a nested call reports raw field errors or passes a rejection upward.
//
// Call panics with the configuration error if the schema is invalid.
func (v *Validator) Call(input any, c Context, outermost bool) Result {
	f := &Frame{ctx: c, maxDepth: v.cfg.MaxDepth}
	return v.run(f, input, outermost)
}

func (v *Validator) run(f *Frame, input any, outermost bool) Result {
	def, err := v.definition()
	if err != nil {
		panic(err)
	}

	errs := Node{}
	params, ok := asParams(input)
	if !ok {
		errs[InputErrorKey] = notAnObject()
	}

	values, rej := v.checkFields(f, def, params, errs)
	if rej != nil {
		return v.reject(f, rej, outermost)
	}

	checked, checkErrs, rej := v.runChecks(f, def, values, errs)
	if rej != nil {
		return v.reject(f, rej, outermost)
	}

	if len(errs) == 0 && def.object != nil {
		var objErrs Node
		checked, objErrs, rej = v.runObjectCheck(f, def, checked)
		if rej != nil {
			return v.reject(f, rej, outermost)
		}
		maps.Copy(checkErrs, objErrs)
	}

	maps.Copy(errs, checkErrs)
	if len(errs) > 0 {
		if outermost {
			v.logger.LogAttrs(context.Background(), v.rejectionLevel(), "params are not valid",
				logger.ErrorType(string(ErrorTypeFields)),
				slog.Int("fields", len(errs)),
			)
			return Result{Errors: fieldsEnvelope(errs), FieldErrors: errs}
		}
		return Result{FieldErrors: errs}
	}
	return Result{Success: true, Value: checked}
}

// checkFields injects defaults, checks presence and runs the type checker of
// every declared field. Field errors are recorded in errs.
func (v *Validator) checkFields(f *Frame, def *definition, params Params, errs Node) (map[string]any, *GeneralError) {
	values := make(map[string]any, def.schema.Len())
	for _, name := range def.schema.names {
		spec := def.schema.fields[name]

		var raw any
		present := false
		if params != nil {
			raw, present = params.Lookup(name)
		}
		if raw == nil && spec.HasDefault() {
			raw, present = cloneValue(spec.Default), true
		}

		if !present {
			if spec.Required {
				errs[name] = required()
			}
			continue
		}
		if raw == nil && spec.AllowNil {
			values[name] = nil
			continue
		}

		out := v.checkers[spec.Type].Check(f, name, spec, raw)
		switch {
		case out.Rejection != nil:
			return nil, out.Rejection
		case out.Err != nil:
			errs[name] = out.Err
		default:
			values[name] = out.Value
		}
	}
	return values, nil
}

// runChecks runs the custom field checks for fields that passed their type
// check. Each check sees the type-checked values, never another check's output.
func (v *Validator) runChecks(f *Frame, def *definition, values map[string]any, errs Node) (map[string]any, Node, *GeneralError) {
	checked := maps.Clone(values)
	checkErrs := Node{}
	for _, name := range def.schema.names {
		fn := def.checks[name]
		if fn == nil {
			continue
		}
		if _, failed := errs[name]; failed {
			continue
		}
		value, ok := values[name]
		if !ok {
			continue
		}

		out, err := fn(f.ctx, value, maps.Clone(values))
		if err == nil {
			checked[name] = out
			continue
		}

		var fe *FieldError
		var ge *GeneralError
		switch {
		case errors.As(err, &ge):
			return nil, nil, ge
		case errors.As(err, &fe):
			checkErrs[name] = fe.Tree
		default:
			v.logger.Warn("field check returned an unexpected error",
				logger.Field(name),
				logger.Depth(f.depth),
				logger.Error(err),
			)
			return nil, nil, &GeneralError{Message: err.Error()}
		}
	}
	return checked, checkErrs, nil
}

// runObjectCheck runs the whole-object check. A field error carrying a Node
// attaches its messages to the named fields; any other field error rejects
// the object with its text.
func (v *Validator) runObjectCheck(f *Frame, def *definition, values map[string]any) (map[string]any, Node, *GeneralError) {
	out, err := def.object(f.ctx, maps.Clone(values))
	if err == nil {
		if out == nil {
			return values, nil, nil
		}
		return out, nil, nil
	}

	var fe *FieldError
	var ge *GeneralError
	switch {
	case errors.As(err, &ge):
		return nil, nil, ge
	case errors.As(err, &fe):
		if node, ok := fe.Tree.(Node); ok {
			return values, node, nil
		}
		return nil, nil, &GeneralError{Message: fe.Error()}
	default:
		v.logger.Warn("object check returned an unexpected error",
			logger.Depth(f.depth),
			logger.Error(err),
		)
		return nil, nil, &GeneralError{Message: err.Error()}
	}
}

// reject finalizes a rejection at the outermost call and passes it upward
// unchanged otherwise.
func (v *Validator) reject(f *Frame, rej *GeneralError, outermost bool) Result {
	if !outermost {
		return Result{Rejection: rej}
	}
	v.logger.LogAttrs(context.Background(), v.rejectionLevel(), "params rejected",
		logger.ErrorType(string(ErrorTypeGeneral)),
		logger.Depth(f.depth),
		slog.String("reason", rej.Message),
	)
	return Result{Errors: generalEnvelope(rej)}
}

func (v *Validator) rejectionLevel() slog.Level {
	if v.cfg.LogRejections {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
