package schema

import (
	"bytes"
	"encoding/json"
)

// Nullable is an update field that can be left alone, set, or cleared.
// A missing key leaves Set false; an explicit JSON null sets Set and Null.
// Use it with the omitzero tag so unset fields are not sent.
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some is a field set to v.
func Some[T any](v T) Nullable[T] { return Nullable[T]{Value: v, Set: true} }

// Null is a field cleared to null.
func Null[T any]() Nullable[T] { return Nullable[T]{Set: true, Null: true} }

// Ptr is the field as an optional column value: nil when unset or null.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}

// apply writes the field into dst when it was present in the payload.
func (n Nullable[T]) apply(dst **T) {
	if n.Set {
		*dst = n.Ptr()
	}
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	var zero T
	n.Value, n.Set, n.Null = zero, true, false
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}
