// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package gismeteo

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/wneessen/gismeteo-weather/internal/weather"
)

// document mirrors the inform-service XML feed. The root element name is not checked. Attributes
// are collected as a whole so that missing ones can be told apart from zero values.
type document struct {
	Location location `xml:"location"`
}

type location struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Fact  fact       `xml:"fact"`
	Days  []day      `xml:"day"`
}

type fact struct {
	Attrs  []xml.Attr `xml:",any,attr"`
	Values node       `xml:"values"`
}

type day struct {
	Attrs     []xml.Attr `xml:",any,attr"`
	Forecasts []forecast `xml:"forecast"`
}

type forecast struct {
	Attrs  []xml.Attr `xml:",any,attr"`
	Values node       `xml:"values"`
}

type node struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// attrs provides typed access to the attributes of a single document node.
type attrs struct {
	node   string
	values map[string]string
	order  []string
}

func newAttrs(node string, list []xml.Attr) attrs {
	a := attrs{node: node, values: make(map[string]string, len(list))}
	for _, attr := range list {
		if _, ok := a.values[attr.Name.Local]; !ok {
			a.order = append(a.order, attr.Name.Local)
		}
		a.values[attr.Name.Local] = strings.TrimSpace(attr.Value)
	}
	return a
}

func (a attrs) has(name string) bool {
	_, ok := a.values[name]
	return ok
}

func (a attrs) str(name string) (string, error) {
	value, ok := a.values[name]
	if !ok {
		return "", &weather.AttributeError{Node: a.node, Name: name}
	}
	return value, nil
}

func (a attrs) integer(name string) (int, error) {
	value, err := a.str(name)
	if err != nil {
		return 0, err
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, a.invalid(name, value)
	}
	return number, nil
}

func (a attrs) float(name string) (float64, error) {
	value, err := a.str(name)
	if err != nil {
		return 0, err
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, a.invalid(name, value)
	}
	return number, nil
}

func (a attrs) integerOr(name string, fallback int) (int, error) {
	if !a.has(name) {
		return fallback, nil
	}
	return a.integer(name)
}

func (a attrs) floatOr(name string, fallback float64) (float64, error) {
	if !a.has(name) {
		return fallback, nil
	}
	return a.float(name)
}

func (a attrs) invalid(name, value string) error {
	return fmt.Errorf("%w: attribute %q of node %q has value %q", weather.ErrInvalidInput, name, a.node, value)
}

// LogValue implements slog.LogValuer and lists the raw attributes in document order.
func (a attrs) LogValue() slog.Value {
	list := make([]slog.Attr, 0, len(a.order))
	for _, name := range a.order {
		list = append(list, slog.String(name, a.values[name]))
	}
	return slog.GroupValue(list...)
}

// rawObservation reads the classifier inputs of a node. Precipitation intensity defaults to 0.
func (a attrs) rawObservation(tod weather.TimeOfDay) (weather.RawObservation, error) {
	var err error
	raw := weather.RawObservation{TimeOfDay: tod}
	if raw.CloudCover, err = a.integer("cl"); err != nil {
		return raw, err
	}
	if raw.PrecipType, err = a.integer("pt"); err != nil {
		return raw, err
	}
	if raw.PrecipIntensity, err = a.integerOr("pr", 0); err != nil {
		return raw, err
	}
	if raw.Thunderstorm, err = a.integer("ts"); err != nil {
		return raw, err
	}
	if raw.WindSpeed, err = a.float("ws"); err != nil {
		return raw, err
	}
	return raw, nil
}

func (a attrs) windBearing() (string, error) {
	code, err := a.integer("wd")
	if err != nil {
		return "", err
	}
	bearing, err := weather.WindBearing(code)
	if err != nil {
		return "", fmt.Errorf("node %q: %w", a.node, err)
	}
	return bearing, nil
}
