// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package gismeteo

import (
	"time"

	"github.com/wneessen/gismeteo-weather/internal/vartype"
	"github.com/wneessen/gismeteo-weather/internal/weather"
)

// buildDaily returns one entry per day node that carries a description and has not passed yet.
// Days are classified as daytime.
func (g *Gismeteo) buildDaily(days []day, offset int, now time.Time) ([]weather.ForecastEntry, error) {
	entries := make([]weather.ForecastEntry, 0, len(days))
	for _, d := range days {
		values := newAttrs("day", d.Attrs)
		if !values.has("descr") {
			continue
		}

		date, err := values.str("date")
		if err != nil {
			return nil, err
		}
		local, err := weather.ParseLocalTimestamp(date, offset)
		if err != nil {
			return nil, err
		}
		if !weather.IsRelevant(local, weather.ModeDaily, now) {
			continue
		}

		entry := weather.ForecastEntry{Time: local.UTC()}
		if err = g.fillEntry(&entry, values, weather.TimeOfDayDay, "tmax"); err != nil {
			return nil, err
		}
		low, err := values.float("tmin")
		if err != nil {
			return nil, err
		}
		entry.TemperatureLow = vartype.NewVariable(low)
		entries = append(entries, entry)
	}
	return entries, nil
}

// buildHourly returns one entry per upcoming forecast slot in document order.
func (g *Gismeteo) buildHourly(days []day, offset int, now time.Time) ([]weather.ForecastEntry, error) {
	entries := make([]weather.ForecastEntry, 0)
	carry := weather.TimeOfDayNight
	for _, d := range days {
		for _, slot := range d.Forecasts {
			var entry weather.ForecastEntry
			var keep bool
			var err error
			entry, keep, carry, err = g.hourlyStep(carry, slot, offset, now)
			if err != nil {
				return nil, err
			}
			if keep {
				entries = append(entries, entry)
			}
		}
	}
	return entries, nil
}

// hourlyStep builds the entry for a single forecast slot. It returns the time of day to carry
// into the next slot. Slots dropped as past leave the carry untouched.
func (g *Gismeteo) hourlyStep(carry weather.TimeOfDay, slot forecast, offset int, now time.Time,
) (weather.ForecastEntry, bool, weather.TimeOfDay, error) {
	var entry weather.ForecastEntry
	slotAttrs := newAttrs("day/forecast", slot.Attrs)

	valid, err := slotAttrs.str("valid")
	if err != nil {
		return entry, false, carry, err
	}
	local, err := weather.ParseLocalTimestamp(valid, offset)
	if err != nil {
		return entry, false, carry, err
	}
	if !weather.IsRelevant(local, weather.ModeHourly, now) {
		return entry, false, carry, nil
	}

	tod, err := slotAttrs.integer("tod")
	if err != nil {
		return entry, false, carry, err
	}
	carry = weather.ResolveTimeOfDay(carry, weather.TimeOfDay(tod))

	entry.Time = local.UTC()
	values := newAttrs("day/forecast/values", slot.Values.Attrs)
	if err = g.fillEntry(&entry, values, carry, "t"); err != nil {
		return entry, false, carry, err
	}
	return entry, true, carry, nil
}

// fillEntry reads the attributes shared by daily and hourly nodes into entry.
func (g *Gismeteo) fillEntry(entry *weather.ForecastEntry, values attrs, tod weather.TimeOfDay,
	tempAttr string,
) error {
	var err error
	if entry.TextCondition, err = values.str("descr"); err != nil {
		return err
	}
	if entry.Temperature, err = values.float(tempAttr); err != nil {
		return err
	}
	if entry.WindSpeed, err = values.float("ws"); err != nil {
		return err
	}
	if entry.WindBearing, err = values.windBearing(); err != nil {
		return err
	}
	if entry.Precipitation, err = values.floatOr("prflt", 0); err != nil {
		return err
	}

	raw, err := values.rawObservation(tod)
	if err != nil {
		return err
	}
	entry.Condition = g.classify(raw, values)
	return nil
}
