package validator

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorTree is the path-addressable error report produced by the engine.
// Implementations: Message, Messages, Node and IndexedList.
type ErrorTree interface {
	errorTree()
}

// Message is a single error message. Text holds the rendered default
// (English) text; Code and Params let a message catalog re-render it.
type Message struct {
	Text   string
	Code   string
	Params map[string]any
}

// Messages holds several messages for one field. The engine reports at most
// one message per field, so it never emits this type itself.
type Messages []Message

// Node maps field names to their errors.
type Node map[string]ErrorTree

// IndexedList holds per-element errors of a nested object list. Elements that
// passed validation are nil.
type IndexedList []ErrorTree

func (Message) errorTree()     {}
func (Messages) errorTree()    {}
func (Node) errorTree()        {}
func (IndexedList) errorTree() {}

func (m Message) String() string { return m.Text }

// MarshalJSON renders the message as its text.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Text)
}

// Flatten returns every message in the tree keyed by its path,
// e.g. "person.addresses[1].street".
func (n Node) Flatten() map[string]string {
	return Flatten(n)
}

// Lookup returns the subtree at path.
func (n Node) Lookup(path string) (ErrorTree, bool) {
	return Lookup(n, path)
}

// Flatten returns every message in the tree keyed by its path. A Messages
// leaf contributes its messages as path[0], path[1], ...
func Flatten(t ErrorTree) map[string]string {
	out := make(map[string]string)
	Walk(t, func(path string, m Message) {
		out[path] = m.Text
	})
	return out
}

// Walk calls fn for every message in the tree.
func Walk(t ErrorTree, fn func(path string, m Message)) {
	walk(t, "", fn)
}

func walk(t ErrorTree, path string, fn func(string, Message)) {
	switch v := t.(type) {
	case Message:
		fn(path, v)
	case Messages:
		for i, m := range v {
			fn(indexPath(path, i), m)
		}
	case Node:
		for k, child := range v {
			walk(child, keyPath(path, k), fn)
		}
	case IndexedList:
		for i, child := range v {
			if child != nil {
				walk(child, indexPath(path, i), fn)
			}
		}
	}
}

// MapMessages returns a copy of the tree with every message replaced by fn(m).
func MapMessages(t ErrorTree, fn func(Message) Message) ErrorTree {
	switch v := t.(type) {
	case Message:
		return fn(v)
	case Messages:
		out := make(Messages, len(v))
		for i, m := range v {
			out[i] = fn(m)
		}
		return out
	case Node:
		out := make(Node, len(v))
		for k, child := range v {
			out[k] = MapMessages(child, fn)
		}
		return out
	case IndexedList:
		out := make(IndexedList, len(v))
		for i, child := range v {
			if child != nil {
				out[i] = MapMessages(child, fn)
			}
		}
		return out
	}
	return t
}

// Lookup returns the subtree at path. Path segments are separated by dots;
// list positions use brackets: "people[2].name".
func Lookup(t ErrorTree, path string) (ErrorTree, bool) {
	cur := t
	for _, seg := range splitPath(path) {
		switch v := cur.(type) {
		case Node:
			if seg.index >= 0 {
				return nil, false
			}
			next, ok := v[seg.key]
			if !ok {
				return nil, false
			}
			cur = next
		case IndexedList:
			if seg.index < 0 || seg.index >= len(v) || v[seg.index] == nil {
				return nil, false
			}
			cur = v[seg.index]
		case Messages:
			if seg.index < 0 || seg.index >= len(v) {
				return nil, false
			}
			cur = v[seg.index]
		default:
			return nil, false
		}
	}
	return cur, cur != nil
}

const invalidIndex = -2

type pathSegment struct {
	key   string
	index int
}

func splitPath(path string) []pathSegment {
	var segs []pathSegment
	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			continue
		}
		key := part
		var idx []int
		if open := strings.IndexByte(part, '['); open >= 0 {
			key = part[:open]
			rest := part[open:]
			for len(rest) > 0 && rest[0] == '[' {
				end := strings.IndexByte(rest, ']')
				if end < 0 {
					break
				}
				n, err := strconv.Atoi(rest[1:end])
				if err != nil || n < 0 {
					n = invalidIndex
				}
				idx = append(idx, n)
				rest = rest[end+1:]
			}
		}
		if key != "" {
			segs = append(segs, pathSegment{key: key, index: -1})
		}
		for _, n := range idx {
			segs = append(segs, pathSegment{index: n})
		}
	}
	return segs
}

func keyPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func indexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}
