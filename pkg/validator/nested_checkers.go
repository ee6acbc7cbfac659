package validator

// checkNested validates a single nested object with the field's child
// validator. The child's field errors become this field's error node.
func checkNested(f *Frame, _ string, spec Spec, raw any) Outcome {
	if !isMapping(raw) {
		return fail(typeMismatch(KindObject))
	}
	if !f.CanDescend() {
		return fail(tooDeep(f.MaxDepth()))
	}
	return nestedOutcome(f.Descend(spec.Child, raw))
}

// checkNestedList validates every element of a list with the child
// validator. Elements that are not objects are handed to the child as is,
// which reports them under InputErrorKey.
func checkNestedList(f *Frame, _ string, spec Spec, raw any) Outcome {
	if isMapping(raw) {
		return fail(typeMismatch(KindArray))
	}
	items, ok := toSlice(raw)
	if !ok {
		return fail(typeMismatch(KindArray))
	}
	if !f.CanDescend() {
		return fail(tooDeep(f.MaxDepth()))
	}

	values := make([]any, len(items))
	errs := make(IndexedList, len(items))
	failed := false
	for i, item := range items {
		out := nestedOutcome(f.Descend(spec.Child, item))
		if out.Rejection != nil {
			return out
		}
		if out.Err != nil {
			errs[i] = out.Err
			failed = true
			continue
		}
		values[i] = out.Value
	}
	if failed {
		return fail(errs)
	}
	return pass(values)
}

func nestedOutcome(res Result) Outcome {
	switch {
	case res.Rejection != nil:
		return Outcome{Rejection: res.Rejection}
	case !res.Success:
		return fail(res.FieldErrors)
	}
	return pass(res.Value)
}
