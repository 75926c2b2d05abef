// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import "math"

const mmHgToHPa = 1.333223684

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// WindBearing maps the provider's wind direction code to a compass point. Codes 1 to 8 map to
// N through NW. Code 0 wraps to NW, which may be a provider quirk for calm or variable wind.
func WindBearing(code int) (string, error) {
	if code < 0 || code > len(compassPoints) {
		return "", &InputError{Field: "wd", Value: code}
	}
	if code == 0 {
		return compassPoints[len(compassPoints)-1], nil
	}
	return compassPoints[code-1], nil
}

// PressureToHPa converts a pressure in mmHg to hPa, rounded to one decimal.
func PressureToHPa(mmHg float64) float64 {
	return math.Round(mmHg*mmHgToHPa*10) / 10
}
