// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/gismeteo-weather/internal/weather"
)

// MoonPhaseIcon is a map where moon phase names are keys and their corresponding emoji representations are values.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// ConditionNames maps the classified conditions to their display names
var ConditionNames = map[weather.Condition]localize.MsgID{
	weather.ConditionLightning:      "Lightning",
	weather.ConditionLightningRainy: "Lightning, rainy",
	weather.ConditionPouring:        "Pouring",
	weather.ConditionRainy:          "Rainy",
	weather.ConditionSnowy:          "Snowy",
	weather.ConditionWindy:          "Windy",
	weather.ConditionCloudy:         "Cloudy",
	weather.ConditionPartlyCloudy:   "Partly cloudy",
	weather.ConditionClearNight:     "Clear night",
	weather.ConditionSunny:          "Sunny",
	weather.ConditionUnknown:        "Unknown",
}

// ConditionIcons maps the classified conditions to single emoji icons
var ConditionIcons = map[weather.Condition]string{
	weather.ConditionLightning:      "⛈️",
	weather.ConditionLightningRainy: "🌩️",
	weather.ConditionPouring:        "🌧️",
	weather.ConditionRainy:          "🌦️",
	weather.ConditionSnowy:          "🌨️",
	weather.ConditionWindy:          "💨",
	weather.ConditionCloudy:         "☁️",
	weather.ConditionPartlyCloudy:   "⛅",
	weather.ConditionClearNight:     "🌙",
	weather.ConditionSunny:          "☀️",
	weather.ConditionUnknown:        "❔",
}

var i18nVars = map[string]localize.MsgID{
	"temp":            "Temperature",
	"humidity":        "Humidity",
	"pressure":        "Pressure",
	"wind":            "Wind",
	"winddir":         "Wind direction",
	"windspeed":       "Wind speed",
	"precipitation":   "Precipitation",
	"cloudiness":      "Cloudiness",
	"geomagnetic":     "Geomagnetic activity",
	"forecastfor":     "Forecast for",
	"updated":         "Updated",
	"sunrise":         "Sunrise",
	"sunset":          "Sunset",
	"moonphase":       "Moonphase",
	"new moon":        "New moon",
	"waxing crescent": "Waxing crescent",
	"first quarter":   "First quarter",
	"waxing gibbous":  "Waxing gibbous",
	"full moon":       "Full moon",
	"waning gibbous":  "Waning gibbous",
	"third quarter":   "Third quarter",
	"waning crescent": "Waning crescent",
}

var windDirIcons = map[string]string{
	"N":  "↑",
	"NE": "↗",
	"E":  "→",
	"SE": "↘",
	"S":  "↓",
	"SW": "↙",
	"W":  "←",
	"NW": "↖",
}
