package validator

import (
	"maps"
	"mime/multipart"
)

// FileHandle is an uploaded file. *multipart.FileHeader satisfies it.
type FileHandle interface {
	Open() (multipart.File, error)
}

func checkArray(_ *Frame, _ string, spec Spec, raw any) Outcome {
	if isMapping(raw) {
		return fail(typeMismatch(KindArray))
	}
	items, ok := toSlice(raw)
	if !ok {
		return fail(typeMismatch(KindArray))
	}
	if err := Apply(NotEmpty(len(items), spec.AllowEmpty)); err != nil {
		return failWith(err)
	}
	return pass(items)
}

// checkHash accepts any mapping; its contents are not validated. Plain maps
// are returned as a copy.
func checkHash(_ *Frame, _ string, _ Spec, raw any) Outcome {
	if m, ok := asMap(raw); ok {
		return pass(maps.Clone(m))
	}
	if p, ok := raw.(Params); ok {
		return pass(p)
	}
	return fail(typeMismatch(KindHash))
}

func checkFile(_ *Frame, _ string, _ Spec, raw any) Outcome {
	switch v := raw.(type) {
	case *multipart.FileHeader:
		if v != nil {
			return pass(v)
		}
	case FileHandle:
		if v != nil {
			return pass(v)
		}
	}
	return fail(typeMismatch(KindFile))
}

func isMapping(raw any) bool {
	_, ok := asParams(raw)
	return ok
}
