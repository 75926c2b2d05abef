// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import "math"

// Condition is the qualitative weather condition derived from the raw provider codes.
type Condition string

const (
	ConditionLightning      Condition = "lightning"
	ConditionLightningRainy Condition = "lightning-rainy"
	ConditionPouring        Condition = "pouring"
	ConditionRainy          Condition = "rainy"
	ConditionSnowy          Condition = "snowy"
	ConditionWindy          Condition = "windy"
	ConditionCloudy         Condition = "cloudy"
	ConditionPartlyCloudy   Condition = "partlycloudy"
	ConditionClearNight     Condition = "clear-night"
	ConditionSunny          Condition = "sunny"
	ConditionUnknown        Condition = "unknown"
)

// TimeOfDay is the provider's day phase indicator.
type TimeOfDay int

const (
	TimeOfDayUnknown TimeOfDay = -1
	TimeOfDayNight   TimeOfDay = 0
	TimeOfDayMorning TimeOfDay = 1
	TimeOfDayDay     TimeOfDay = 2
	TimeOfDayEvening TimeOfDay = 3
)

// Cloud cover codes.
const (
	CloudClear        = 0
	CloudPartly       = 1
	CloudCloudy       = 2
	CloudOvercast     = 3
	CloudPartlyCloudy = 101
)

// Precipitation type codes.
const (
	PrecipNone = 0
	PrecipRain = 1
	PrecipSnow = 2
)

const (
	heavyPrecipIntensity = 3
	windyThreshold       = 7.0
)

// RawObservation holds the raw provider codes of a single node.
type RawObservation struct {
	TimeOfDay       TimeOfDay
	CloudCover      int
	PrecipType      int
	PrecipIntensity int
	Thunderstorm    int
	WindSpeed       float64
}

// ResolveTimeOfDay returns raw unless it is unknown, in which case the carried value is kept.
func ResolveTimeOfDay(carry, raw TimeOfDay) TimeOfDay {
	if raw == TimeOfDayUnknown {
		return carry
	}
	return raw
}

// Classify maps a RawObservation to exactly one Condition. Inputs outside the documented code
// ranges yield ConditionUnknown and a *ClassificationError.
func Classify(obs RawObservation) (Condition, error) {
	if fields := obs.invalidFields(); len(fields) > 0 {
		return ConditionUnknown, &ClassificationError{Observation: obs, Fields: fields}
	}

	storm := obs.Thunderstorm == 1
	switch {
	case storm && obs.PrecipType == PrecipRain:
		return ConditionLightning, nil
	case storm:
		return ConditionLightningRainy, nil
	case obs.PrecipType == PrecipRain && obs.PrecipIntensity == heavyPrecipIntensity:
		return ConditionPouring, nil
	case obs.PrecipType == PrecipRain:
		return ConditionRainy, nil
	case obs.PrecipType == PrecipSnow:
		return ConditionSnowy, nil
	case obs.WindSpeed > windyThreshold:
		return ConditionWindy, nil
	case obs.CloudCover == CloudCloudy || obs.CloudCover == CloudOvercast:
		return ConditionCloudy, nil
	case obs.CloudCover == CloudPartly || obs.CloudCover == CloudPartlyCloudy:
		return ConditionPartlyCloudy, nil
	case obs.TimeOfDay == TimeOfDayNight && obs.CloudCover == CloudClear:
		return ConditionClearNight, nil
	case obs.TimeOfDay != TimeOfDayNight && obs.CloudCover == CloudClear:
		return ConditionSunny, nil
	}
	return ConditionUnknown, nil
}

func (o RawObservation) invalidFields() []string {
	var fields []string
	if o.TimeOfDay < TimeOfDayUnknown || o.TimeOfDay > TimeOfDayEvening {
		fields = append(fields, "tod")
	}
	switch o.CloudCover {
	case CloudClear, CloudPartly, CloudCloudy, CloudOvercast, CloudPartlyCloudy:
	default:
		fields = append(fields, "cl")
	}
	if o.PrecipType < PrecipNone || o.PrecipType > PrecipSnow {
		fields = append(fields, "pt")
	}
	if o.PrecipIntensity < 0 || o.PrecipIntensity > heavyPrecipIntensity {
		fields = append(fields, "pr")
	}
	if o.Thunderstorm != 0 && o.Thunderstorm != 1 {
		fields = append(fields, "ts")
	}
	if o.WindSpeed < 0 || math.IsNaN(o.WindSpeed) {
		fields = append(fields, "ws")
	}
	return fields
}
