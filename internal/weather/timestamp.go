// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"fmt"
	"time"
)

// Accepted wall-clock layouts. None of them carries a zone designator. The fractional layouts
// also match whole seconds and format them without a fraction.
var timestampLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// FixedZone returns a location offsetMinutes east of UTC.
func FixedZone(offsetMinutes int) *time.Location {
	sign, minutes := '+', offsetMinutes
	if minutes < 0 {
		sign, minutes = '-', -minutes
	}
	return time.FixedZone(fmt.Sprintf("UTC%c%02d:%02d", sign, minutes/60, minutes%60), offsetMinutes*60)
}

// ParseLocalTimestamp parses a wall-clock timestamp in the zone offsetMinutes east of UTC.
func ParseLocalTimestamp(ts string, offsetMinutes int) (time.Time, error) {
	t, _, err := parseLocal(ts, offsetMinutes)
	return t, err
}

// LocalTimestampLayout returns the layout ts is written in, for use with FormatLocalTimestamp.
func LocalTimestampLayout(ts string) (string, error) {
	_, layout, err := parseLocal(ts, 0)
	return layout, err
}

func parseLocal(ts string, offsetMinutes int) (time.Time, string, error) {
	zone := FixedZone(offsetMinutes)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, ts, zone); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
}

// ToUTC parses a local wall-clock timestamp and returns the instant in UTC.
func ToUTC(ts string, offsetMinutes int) (time.Time, error) {
	t, err := ParseLocalTimestamp(ts, offsetMinutes)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatLocalTimestamp formats t as a wall-clock timestamp in the zone offsetMinutes east of UTC,
// using a layout obtained from LocalTimestampLayout.
func FormatLocalTimestamp(t time.Time, offsetMinutes int, layout string) string {
	return t.In(FixedZone(offsetMinutes)).Format(layout)
}

// IsRelevant reports whether a forecast point at local is still worth displaying at now. Daily
// points stay relevant until the day they describe has passed.
func IsRelevant(local time.Time, mode Mode, now time.Time) bool {
	if mode == ModeDaily {
		return !local.AddDate(0, 0, 1).Before(now)
	}
	return !local.Before(now)
}
