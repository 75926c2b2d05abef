// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrMalformedTimestamp is returned when a timestamp does not match any accepted layout.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrInvalidInput is returned when a provider code is outside its documented domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingAttribute is returned when a required document attribute is absent.
	ErrMissingAttribute = errors.New("missing attribute")
)

// ClassificationError carries the observation that could not be classified together with the
// names of the fields that are out of range.
type ClassificationError struct {
	Observation RawObservation
	Fields      []string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("failed to classify observation: %s out of range", strings.Join(e.Fields, ", "))
}

func (e *ClassificationError) Unwrap() error {
	return ErrInvalidInput
}

// LogValue implements slog.LogValuer.
func (e *ClassificationError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("fields", e.Fields),
		slog.Int("tod", int(e.Observation.TimeOfDay)),
		slog.Int("cl", e.Observation.CloudCover),
		slog.Int("pt", e.Observation.PrecipType),
		slog.Int("pr", e.Observation.PrecipIntensity),
		slog.Int("ts", e.Observation.Thunderstorm),
		slog.Float64("ws", e.Observation.WindSpeed),
	)
}

// AttributeError reports a required attribute that is missing from a document node.
type AttributeError struct {
	Node string
	Name string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("node %q is missing attribute %q", e.Node, e.Name)
}

func (e *AttributeError) Unwrap() error {
	return ErrMissingAttribute
}

// InputError reports a single value outside its accepted domain.
type InputError struct {
	Field string
	Value any
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
