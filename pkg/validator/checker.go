package validator

// Outcome is what a Checker reports for one field: a coerced Value, a field
// error tree, or a whole-object Rejection raised by a nested validator.
type Outcome struct {
	Value     any
	Err       ErrorTree
	Rejection *GeneralError
}

// Checker validates and coerces the raw value of one field.
type Checker interface {
	Check(f *Frame, key string, spec Spec, raw any) Outcome
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(f *Frame, key string, spec Spec, raw any) Outcome

func (fn CheckerFunc) Check(f *Frame, key string, spec Spec, raw any) Outcome {
	return fn(f, key, spec, raw)
}

// Frame is the state of one validation call that checkers may need: the
// caller's context and the current nesting depth.
type Frame struct {
	ctx      Context
	depth    int
	maxDepth int
}

// Context returns the caller-supplied context.
func (f *Frame) Context() Context { return f.ctx }

// Depth returns the nesting depth of the frame; the outermost call is 0.
func (f *Frame) Depth() int { return f.depth }

// CanDescend reports whether a nested call would stay within the depth limit.
func (f *Frame) CanDescend() bool { return f.depth < f.maxDepth }

// MaxDepth returns the nesting limit in effect.
func (f *Frame) MaxDepth() int { return f.maxDepth }

// Descend validates raw with child as a nested (non-outermost) call one level
// deeper, sharing the caller's context and depth limit.
func (f *Frame) Descend(child *Validator, raw any) Result {
	next := &Frame{ctx: f.ctx, depth: f.depth + 1, maxDepth: f.maxDepth}
	return child.run(next, raw, false)
}

func pass(v any) Outcome { return Outcome{Value: v} }

func fail(t ErrorTree) Outcome { return Outcome{Err: t} }

func failWith(err error) Outcome {
	if fe, ok := err.(*FieldError); ok {
		return Outcome{Err: fe.Tree}
	}
	return Outcome{Err: Message{Text: err.Error()}}
}

func defaultCheckers() map[Type]Checker {
	return map[Type]Checker{
		TypeNum:        CheckerFunc(checkNum),
		TypeInt:        CheckerFunc(checkInt),
		TypeChar:       CheckerFunc(checkString),
		TypeText:       CheckerFunc(checkString),
		TypeEmail:      CheckerFunc(checkEmail),
		TypeUUID:       CheckerFunc(checkUUID),
		TypeBool:       CheckerFunc(checkBool),
		TypeDate:       CheckerFunc(checkDate),
		TypeTime:       CheckerFunc(checkTime),
		TypeDateTime:   CheckerFunc(checkDateTime),
		TypeArray:      CheckerFunc(checkArray),
		TypeHash:       CheckerFunc(checkHash),
		TypeFile:       CheckerFunc(checkFile),
		TypeNested:     CheckerFunc(checkNested),
		TypeNestedList: CheckerFunc(checkNestedList),
	}
}
