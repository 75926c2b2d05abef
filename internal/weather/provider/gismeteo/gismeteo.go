// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package gismeteo implements a weather.Provider for the Gismeteo inform-service XML feed.
package gismeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/language"

	"github.com/wneessen/gismeteo-weather/internal/http"
	"github.com/wneessen/gismeteo-weather/internal/logger"
	"github.com/wneessen/gismeteo-weather/internal/weather"
)

const (
	name        = "gismeteo"
	apiEndpoint = "https://services.gismeteo.ru/inform-service/inf_ios/forecast/"
	apiTimeout  = time.Second * 10
	defaultLang = "en"

	// Attribution is the notice the feed terms ask to display along with the data.
	Attribution = "Data provided by gismeteo.ru"
)

type Gismeteo struct {
	mode  weather.Mode
	lang  string
	log   *logger.Logger
	http  *http.Client
	clock clockwork.Clock
}

func New(http *http.Client, log *logger.Logger, mode weather.Mode, lang language.Tag) (*Gismeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if _, err := weather.ParseMode(string(mode)); err != nil {
		return nil, fmt.Errorf("failed to initialize gismeteo provider: %w", err)
	}

	return &Gismeteo{
		mode:  mode,
		lang:  langParam(lang),
		http:  http,
		log:   log,
		clock: clockwork.NewRealClock(),
	}, nil
}

func (g *Gismeteo) Name() string {
	return name
}

// GetWeather fetches the feed for the given city id and assembles a weather snapshot from it.
func (g *Gismeteo) GetWeather(ctx context.Context, city string) (*weather.Data, error) {
	doc := new(document)

	query := url.Values{}
	query.Set("city", city)
	query.Set("lang", g.lang)

	if _, err := g.http.GetWithTimeout(ctx, apiEndpoint, doc, query, nil, apiTimeout); err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from Gismeteo API: %w", err)
	}

	data, err := g.buildData(doc, city, g.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to process Gismeteo weather data: %w", err)
	}
	return data, nil
}

func (g *Gismeteo) buildData(doc *document, city string, now time.Time) (*weather.Data, error) {
	data := weather.NewData(g.mode)
	data.GeneratedAt = now
	data.Attribution = Attribution

	loc := newAttrs("location", doc.Location.Attrs)
	offset, err := loc.integer("tzone")
	if err != nil {
		return nil, err
	}
	data.Location = weather.Location{ID: city, Name: city, UTCOffset: offset}
	if locName, _ := loc.str("name"); locName != "" {
		data.Location.Name = locName
	}

	data.Current, err = g.buildObservation(doc.Location.Fact)
	if err != nil {
		return nil, err
	}

	switch g.mode {
	case weather.ModeDaily:
		data.Forecast, err = g.buildDaily(doc.Location.Days, offset, now)
	default:
		data.Forecast, err = g.buildHourly(doc.Location.Days, offset, now)
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (g *Gismeteo) buildObservation(f fact) (weather.Observation, error) {
	var obs weather.Observation
	var err error

	tod, err := newAttrs("fact", f.Attrs).integer("tod")
	if err != nil {
		return obs, err
	}
	obs.TimeOfDay = weather.TimeOfDay(tod)

	values := newAttrs("fact/values", f.Values.Attrs)
	if obs.Temperature, err = values.float("tflt"); err != nil {
		return obs, err
	}
	pressure, err := values.float("p")
	if err != nil {
		return obs, err
	}
	obs.Pressure = weather.PressureToHPa(pressure)
	if obs.Humidity, err = values.float("hum"); err != nil {
		return obs, err
	}
	if obs.WindSpeed, err = values.float("ws"); err != nil {
		return obs, err
	}
	if obs.WindBearing, err = values.windBearing(); err != nil {
		return obs, err
	}
	if obs.TextCondition, err = values.str("descr"); err != nil {
		return obs, err
	}
	if obs.Cloudiness, err = values.integer("cl"); err != nil {
		return obs, err
	}
	if obs.GeomagneticGrade, err = values.integer("grade"); err != nil {
		return obs, err
	}
	if obs.PH, err = values.integer("ph"); err != nil {
		return obs, err
	}

	raw, err := values.rawObservation(obs.TimeOfDay)
	if err != nil {
		return obs, err
	}
	obs.Condition = g.classify(raw, values)

	return obs, nil
}

// classify maps raw to a condition. Observations the classifier rejects are logged together
// with the raw node attributes and reported as unknown.
func (g *Gismeteo) classify(raw weather.RawObservation, values attrs) weather.Condition {
	condition, err := weather.Classify(raw)
	if err != nil {
		g.log.Warn("unknown weather condition", slog.String("node", values.node),
			slog.Any("diagnostics", err), slog.Any("attributes", values))
		return weather.ConditionUnknown
	}
	return condition
}

func langParam(tag language.Tag) string {
	if tag == language.Und {
		return defaultLang
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return defaultLang
	}
	return base.String()
}
