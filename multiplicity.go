package ivms101

import (
	"bytes"

	"github.com/goccy/go-json"
)

// OneOrMany holds at least one T and remembers whether it was built from a
// bare value or a list, so encoding reproduces the shape it was given.
// Decoding accepts either a bare T or a non-empty list of T.
type OneOrMany[T any] struct {
	list  bool
	items []T
}

// One wraps a single bare value.
func One[T any](v T) OneOrMany[T] {
	return OneOrMany[T]{items: []T{v}}
}

// Many wraps a list of values; the list must not be empty.
func Many[T any](vs ...T) (OneOrMany[T], error) {
	if len(vs) == 0 {
		return OneOrMany[T]{}, shapeErrorf(CodeNoVariant, "data did not match any variant of OneOrMany")
	}
	return OneOrMany[T]{list: true, items: vs}, nil
}

// First returns the first element, which the ≥1 invariant guarantees to
// exist for any decoded or constructed container. The zero container yields
// the zero value of T.
func (m OneOrMany[T]) First() T {
	if len(m.items) == 0 {
		var zero T
		return zero
	}
	return m.items[0]
}

// Values returns the elements in order.
func (m OneOrMany[T]) Values() []T { return m.items }

func (m OneOrMany[T]) Len() int { return len(m.items) }

// IsZero reports whether the container was never populated. A zero
// OneOrMany violates the ≥1 invariant and only exists before decoding;
// parents treat it as a missing required field.
func (m OneOrMany[T]) IsZero() bool { return len(m.items) == 0 }

func (m OneOrMany[T]) MarshalJSON() ([]byte, error) {
	if len(m.items) == 0 {
		return nil, shapeErrorf(CodeRequired, "cannot encode a OneOrMany holding no elements")
	}
	if m.list {
		return json.Marshal(m.items)
	}
	return json.Marshal(m.items[0])
}

func (m *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		var vs []T
		if err := decodeStrict(data, &vs); err != nil {
			return err
		}
		if len(vs) == 0 {
			return shapeErrorf(CodeNoVariant, "data did not match any variant of OneOrMany")
		}
		*m = OneOrMany[T]{list: true, items: vs}
		return nil
	}
	var v T
	if err := decodeStrict(data, &v); err != nil {
		return err
	}
	*m = OneOrMany[T]{items: []T{v}}
	return nil
}

type zstate uint8

const (
	zNone zstate = iota
	zOne
	zMany
)

// ZeroOrMany holds zero or more T, distinguishing an absent field, a bare
// value and a list to mirror the input shape. Absent and empty list are
// equivalent for presence checks; both are omitted when the parent encodes.
// Because omission needs an enclosing object, ZeroOrMany cannot sit at the
// root of a message.
type ZeroOrMany[T any] struct {
	state zstate
	items []T
}

// Single wraps one bare value.
func Single[T any](v T) ZeroOrMany[T] {
	return ZeroOrMany[T]{state: zOne, items: []T{v}}
}

// List wraps a list of values, possibly empty.
func List[T any](vs ...T) ZeroOrMany[T] {
	return ZeroOrMany[T]{state: zMany, items: vs}
}

// IsEmpty reports whether no value is present: true for the zero container
// and for an empty list.
func (m ZeroOrMany[T]) IsEmpty() bool { return len(m.items) == 0 }

// First returns the first element when one is present.
func (m ZeroOrMany[T]) First() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[0], true
}

// Values returns the elements in order; nil when absent.
func (m ZeroOrMany[T]) Values() []T { return m.items }

func (m ZeroOrMany[T]) Len() int { return len(m.items) }

func (m ZeroOrMany[T]) MarshalJSON() ([]byte, error) {
	switch m.state {
	case zOne:
		return json.Marshal(m.items[0])
	case zMany:
		return json.Marshal(m.items)
	}
	// Parents omit empty containers before marshaling reaches here.
	return []byte("null"), nil
}

func (m *ZeroOrMany[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*m = ZeroOrMany[T]{}
		return nil
	}
	if isJSONArray(data) {
		var vs []T
		if err := decodeStrict(data, &vs); err != nil {
			return err
		}
		*m = ZeroOrMany[T]{state: zMany, items: vs}
		return nil
	}
	var v T
	if err := decodeStrict(data, &v); err != nil {
		return err
	}
	*m = ZeroOrMany[T]{state: zOne, items: []T{v}}
	return nil
}

// omitEmpty projects a ZeroOrMany into a pointer an omitempty struct tag
// can drop when the container holds nothing.
func omitEmpty[T any](m ZeroOrMany[T]) *ZeroOrMany[T] {
	if m.IsEmpty() {
		return nil
	}
	return &m
}

func isJSONArray(data []byte) bool {
	t := bytes.TrimLeft(data, " \t\r\n")
	return len(t) > 0 && t[0] == '['
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
