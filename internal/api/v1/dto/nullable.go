package dto

import (
	"encoding/json"
	"reflect"
)

// Nullable tracks whether a JSON field was sent at all and whether it was null.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NewNullable returns a present, non-null value.
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// UnmarshalJSON is also invoked for an explicit null.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.Valid, n.Value = false, zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// IsNull reports an explicit JSON null.
func (n Nullable[T]) IsNull() bool { return n.Set && !n.Valid }

// Ptr returns nil for null, otherwise a pointer to a copy of the value.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// nullableValue exposes the wrapped value to validator tags; null validates as absent.
func nullableValue[T any](field reflect.Value) any {
	n, ok := field.Interface().(Nullable[T])
	if !ok || !n.Valid {
		return nil
	}
	return n.Value
}
