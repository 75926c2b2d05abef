// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"time"

	"github.com/wneessen/gismeteo-weather/internal/vartype"
)

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	GetWeather(ctx context.Context, city string) (*Data, error)
}

// Mode selects the granularity of the forecast list.
type Mode string

const (
	ModeHourly Mode = "hourly"
	ModeDaily  Mode = "daily"
)

// Data is a complete weather snapshot as returned by a Provider.
type Data struct {
	GeneratedAt time.Time
	Location    Location
	Mode        Mode
	Attribution string

	Current  Observation
	Forecast []ForecastEntry
}

// Location describes the place a snapshot was generated for.
type Location struct {
	ID   string
	Name string

	// UTCOffset is the offset of the local time zone, in minutes east of UTC.
	UTCOffset int
}

// Observation holds the current conditions.
type Observation struct {
	Temperature      float64
	Pressure         float64
	Humidity         float64
	WindSpeed        float64
	WindBearing      string
	Condition        Condition
	TextCondition    string
	Cloudiness       int
	GeomagneticGrade int
	PH               int
	TimeOfDay        TimeOfDay
}

// ForecastEntry is a single point of the forecast list. Time is always UTC.
type ForecastEntry struct {
	Time           time.Time
	Condition      Condition
	TextCondition  string
	Temperature    float64
	TemperatureLow vartype.VarFloat64
	WindSpeed      float64
	WindBearing    string
	Precipitation  float64
}

// NewData returns an empty snapshot for the given mode.
func NewData(mode Mode) *Data {
	return &Data{
		Mode:     mode,
		Forecast: make([]ForecastEntry, 0),
	}
}

// ParseMode returns the Mode for the given name.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeHourly, ModeDaily:
		return Mode(name), nil
	default:
		return "", &InputError{Field: "mode", Value: name}
	}
}

// Next returns the first forecast entry still relevant at now. Daily entries stay relevant
// for the whole day they start.
func (d *Data) Next(now time.Time) (ForecastEntry, bool) {
	for _, entry := range d.Forecast {
		if IsRelevant(entry.Time, d.Mode, now) {
			return entry, true
		}
	}
	return ForecastEntry{}, false
}
