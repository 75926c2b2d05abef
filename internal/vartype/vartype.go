// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides values that remember whether they were ever set.
package vartype

import (
	"encoding/json"
	"fmt"
)

type (
	// VarFloat64 is a Variable holding a float64.
	VarFloat64 = Variable[float64]

	// VarInt is a Variable holding an int.
	VarInt = Variable[int]
)

// Variable holds a value together with its initialization state. The zero value is unset.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable returns a Variable that is set to value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Reset clears the value and marks the Variable as unset.
func (v *Variable[T]) Reset() {
	var newVal T
	v.value = newVal
	v.isset = false
}

// Value returns the stored value, or the zero value of T if the Variable is unset.
func (v Variable[T]) Value() T {
	return v.value
}

// ValueOr returns the stored value, or fallback if the Variable is unset.
func (v Variable[T]) ValueOr(fallback T) T {
	if !v.isset {
		return fallback
	}
	return v.value
}

// Set stores val and marks the Variable as set.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet reports whether a value has been stored.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

// String returns the stored value formatted with fmt, or a placeholder if unset.
func (v Variable[T]) String() string {
	if !v.isset {
		return "n/a"
	}
	return fmt.Sprint(v.value)
}

// MarshalJSON encodes an unset Variable as null.
func (v Variable[T]) MarshalJSON() ([]byte, error) {
	if !v.isset {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
