package domain

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a three-state value for partial updates: absent (the zero
// value), present with null, or present with a value. Decoding a JSON object
// leaves absent keys as the zero Optional because UnmarshalJSON only runs
// for keys that appear in the payload.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Null returns an Optional that is present but explicitly null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// IsPresent reports whether the field appeared in the payload.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsNull reports whether the field appeared with an explicit null.
func (o Optional[T]) IsNull() bool { return o.present && o.null }

// HasValue reports whether the field appeared with a non-null value.
func (o Optional[T]) HasValue() bool { return o.present && !o.null }

// Value returns the held value. It is the zero T unless HasValue is true.
func (o Optional[T]) Value() T { return o.value }

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON implements json.Marshaler. Absent and null both encode as
// null; pair with the omitzero tag option to drop absent fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}
