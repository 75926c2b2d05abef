// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"github.com/wneessen/gismeteo-weather/internal/config"
	"github.com/wneessen/gismeteo-weather/internal/http"
	"github.com/wneessen/gismeteo-weather/internal/i18n"
	"github.com/wneessen/gismeteo-weather/internal/logger"
	"github.com/wneessen/gismeteo-weather/internal/weather"
	"github.com/wneessen/gismeteo-weather/internal/weather/provider/gismeteo"
)

func newWeatherProvider(conf *config.Config, log *logger.Logger) (weather.Provider, error) {
	mode, err := weather.ParseMode(conf.Weather.Mode)
	if err != nil {
		return nil, err
	}
	provider, err := gismeteo.New(http.New(log), log, mode, i18n.Tag(conf.Locale))
	if err != nil {
		return nil, err
	}
	return provider, nil
}
