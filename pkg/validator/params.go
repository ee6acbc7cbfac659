package validator

import "net/url"

// Params is the input container: anything offering key lookup over a plain mapping.
type Params interface {
	Lookup(key string) (any, bool)
}

// Map adapts a plain map to Params.
type Map map[string]any

func (m Map) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Values adapts url.Values to Params. A key with one value yields a string,
// a key with several values yields []any of strings.
type Values url.Values

func (v Values) Lookup(key string) (any, bool) {
	vals, ok := v[key]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	if len(vals) == 1 {
		return vals[0], true
	}
	out := make([]any, len(vals))
	for i, s := range vals {
		out[i] = s
	}
	return out, true
}

// AsMap is implemented by Params that can expose their contents as a plain map.
type AsMap interface {
	AsMap() map[string]any
}

func (m Map) AsMap() map[string]any { return m }

func (v Values) AsMap() map[string]any {
	out := make(map[string]any, len(v))
	for k := range v {
		out[k], _ = v.Lookup(k)
	}
	return out
}

// asParams reports whether raw is a supported mapping and wraps it as Params.
func asParams(raw any) (Params, bool) {
	switch in := raw.(type) {
	case Params:
		return in, true
	case map[string]any:
		return Map(in), true
	case url.Values:
		return Values(in), true
	case map[string]string:
		m := make(Map, len(in))
		for k, v := range in {
			m[k] = v
		}
		return m, true
	}
	return Map(nil), false
}

// asMap returns raw as a plain map when raw is a supported mapping.
func asMap(raw any) (map[string]any, bool) {
	p, ok := asParams(raw)
	if !ok {
		return nil, false
	}
	if m, ok := p.(AsMap); ok {
		return m.AsMap(), true
	}
	return nil, false
}
