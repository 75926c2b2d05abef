// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/wneessen/gismeteo-weather/internal/logger"
)

const FetchTimeout = time.Second * 10

// updateWeather is the scheduled fetch. The update interval is validated against the minimum
// interval, so it always runs and restarts the cooldown for out-of-band refreshes.
func (s *Service) updateWeather(ctx context.Context) {
	if s.fetchJob.Force(ctx) {
		s.printWeather(ctx)
	}
}

// refreshWeather fetches new weather data outside the schedule, unless the last fetch is more
// recent than the minimum update interval or still in progress.
func (s *Service) refreshWeather(ctx context.Context, trigger string) {
	if !s.fetchJob.Ready() {
		s.logger.Debug("skipping weather refresh, minimum update interval not reached",
			slog.String("trigger", trigger))
		return
	}
	if !s.fetchJob.Run(ctx) {
		s.logger.Debug("skipping weather refresh, fetch already in progress",
			slog.String("trigger", trigger))
		return
	}
	s.printWeather(ctx)
}

func (s *Service) fetchWeather(ctx context.Context) {
	ctxFetch, cancelFetch := context.WithTimeout(ctx, FetchTimeout)
	defer cancelFetch()

	start := s.clock.Now()
	data, err := s.weatherProv.GetWeather(ctxFetch, s.config.Weather.City)
	s.metrics.ObserveFetch(s.weatherProv.Name(), s.clock.Since(start), err)
	if err != nil {
		s.logger.Error("failed to fetch weather data", logger.Err(err),
			slog.String("source", s.weatherProv.Name()))
		return
	}
	s.metrics.ObserveSnapshot(data)

	s.weatherLock.Lock()
	s.weather = data
	s.weatherIsSet = true
	s.weatherLock.Unlock()

	s.logger.Debug("weather data updated", slog.String("location", data.Location.Name),
		slog.String("mode", string(data.Mode)), slog.Int("forecasts", len(data.Forecast)))
}
