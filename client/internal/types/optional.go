package types

import (
	"bytes"
	"encoding/json"
)

type optionalState uint8

const (
	optionalOmitted optionalState = iota
	optionalNull
	optionalSet
)

// Optional is a JSON field with three states: omitted, explicit null, or a
// value. Combine with the `omitzero` tag so the omitted state drops the key.
type Optional[T any] struct {
	value T
	state optionalState
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: optionalSet}
}

// Null returns an Optional that encodes as JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: optionalNull}
}

// IsZero reports the omitted state; encoding/json uses it for omitzero.
func (o Optional[T]) IsZero() bool { return o.state == optionalOmitted }

// IsNull reports an explicit null.
func (o Optional[T]) IsNull() bool { return o.state == optionalNull }

// Get returns the value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == optionalSet
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != optionalSet {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
