// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/spreak"
	"github.com/wneessen/go-moonphase"

	"github.com/wneessen/gismeteo-weather/internal/config"
	"github.com/wneessen/gismeteo-weather/internal/job"
	"github.com/wneessen/gismeteo-weather/internal/logger"
	"github.com/wneessen/gismeteo-weather/internal/metrics"
	"github.com/wneessen/gismeteo-weather/internal/presenter"
	"github.com/wneessen/gismeteo-weather/internal/weather"
)

const (
	OutputClass     = "gismeteo-weather"
	HotOutputClass  = "hot"
	ColdOutputClass = "cold"
)

type outputData struct {
	Text    string   `json:"text"`
	Tooltip string   `json:"tooltip"`
	Classes []string `json:"class"`
}

type Service struct {
	SignalSrc signalSource

	clock       clockwork.Clock
	config      *config.Config
	fetchJob    *job.Job
	logger      *logger.Logger
	metrics     *metrics.Metrics
	output      io.Writer
	presenter   *presenter.Presenter
	scheduler   gocron.Scheduler
	weatherProv weather.Provider

	displayAltLock sync.RWMutex
	displayAltText bool

	weatherLock  sync.RWMutex
	weatherIsSet bool
	weather      *weather.Data
}

func New(conf *config.Config, log *logger.Logger, lang *spreak.Localizer) (*Service, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}

	pres, err := presenter.New(conf, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	weatherProv, err := newWeatherProvider(conf, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather provider: %w", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	service := &Service{
		SignalSrc:   stdLibSignalSource{},
		clock:       clockwork.NewRealClock(),
		config:      conf,
		logger:      log,
		metrics:     metrics.New(),
		output:      os.Stdout,
		presenter:   pres,
		scheduler:   scheduler,
		weatherProv: weatherProv,
	}
	service.fetchJob = job.New(config.MinWeatherUpdate, service.fetchWeather)

	return service, nil
}

// Run starts the scheduled jobs and the event handlers and blocks until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.createScheduledJob(ctx, s.config.Intervals.Output, s.printWeather,
		"weatherdata_output_job"); err != nil {
		return errors.Join(err, s.scheduler.Shutdown())
	}
	if err := s.createScheduledJob(ctx, s.config.Intervals.WeatherUpdate, s.updateWeather,
		"weather_update_job"); err != nil {
		return errors.Join(err, s.scheduler.Shutdown())
	}
	s.scheduler.Start()
	s.logger.Debug("scheduled jobs started", slog.String("city", s.config.Weather.City),
		slog.Duration("weather_update", s.config.Intervals.WeatherUpdate),
		slog.Duration("output", s.config.Intervals.Output))

	if s.config.Metrics.Listen != "" {
		go s.serveMetrics(ctx)
	}
	if !s.config.System.DisableResumeRefresh {
		go s.monitorSleepResume(ctx)
	}

	sigChan := make(chan os.Signal, 1)
	s.SignalSrc.Notify(sigChan, syscall.SIGUSR1, syscall.SIGHUP)
	go func() {
		defer s.SignalSrc.Stop(sigChan)
		s.HandleSignals(ctx, sigChan)
	}()

	<-ctx.Done()
	return s.scheduler.Shutdown()
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string,
) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithName(jobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return nil
}

// printWeather renders the current snapshot and writes it as a JSON line to the output.
func (s *Service) printWeather(context.Context) {
	s.weatherLock.RLock()
	if !s.weatherIsSet {
		s.weatherLock.RUnlock()
		return
	}
	data := s.weather
	s.weatherLock.RUnlock()

	now := s.clock.Now()
	sunriseTime, sunsetTime := s.sunTimes(now)
	tplCtx := s.presenter.BuildContext(data, now, sunriseTime, sunsetTime, moonphase.New(now).PhaseName())
	rendered, err := s.presenter.Render(tplCtx)
	if err != nil {
		s.logger.Error("failed to render weather template", logger.Err(err))
		return
	}

	s.displayAltLock.RLock()
	altMode := s.displayAltText
	s.displayAltLock.RUnlock()

	output := outputData{
		Text:    rendered["text"],
		Tooltip: rendered["tooltip"],
		Classes: s.outputClasses(tplCtx, altMode),
	}
	if altMode {
		output.Text = rendered["alt_text"]
		output.Tooltip = rendered["alt_tooltip"]
	}

	if err = json.NewEncoder(s.output).Encode(output); err != nil {
		s.logger.Error("failed to encode weather data", logger.Err(err))
	}
}

// outputClasses returns the CSS classes for the displayed condition and temperature.
func (s *Service) outputClasses(tplCtx presenter.TemplateContext, altMode bool) []string {
	condition, temperature := tplCtx.Current.Condition, tplCtx.Current.Temperature
	if altMode {
		condition, temperature = tplCtx.Forecast.Condition, tplCtx.Forecast.Temperature
	}

	classes := []string{OutputClass}
	if condition != "" {
		classes = append(classes, string(condition))
	}
	switch {
	case temperature >= s.config.Weather.HotThreshold:
		classes = append(classes, HotOutputClass)
	case temperature <= s.config.Weather.ColdThreshold:
		classes = append(classes, ColdOutputClass)
	}
	return classes
}

// sunTimes returns sunrise and sunset of the configured location for the day of now. Without
// coordinates both are zero.
func (s *Service) sunTimes(now time.Time) (time.Time, time.Time) {
	if !s.config.HasCoordinates() {
		return time.Time{}, time.Time{}
	}
	utc := now.UTC()
	rise, set := sunrise.SunriseSunset(s.config.Location.Latitude, s.config.Location.Longitude,
		utc.Year(), utc.Month(), utc.Day())
	return rise.In(now.Location()), set.In(now.Location())
}
