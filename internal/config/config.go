// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "GISMETEO"

	// MinWeatherUpdate is the shortest allowed interval between two requests to the feed.
	MinWeatherUpdate = time.Minute * 5

	DefaultTextTpl    = "{{.Current.ConditionIcon}} {{hum .Current.Temperature}}{{.TempUnit}}"
	DefaultAltTextTpl = "{{.Forecast.ConditionIcon}} {{hum .Forecast.Temperature}}{{.TempUnit}}"
	DefaultTooltipTpl = "{{.Location}}\n" +
		"{{.Current.ConditionName}}\n" +
		"{{loc \"humidity\"}}: {{floatFormat .Current.Humidity 0}}%\n" +
		"{{loc \"pressure\"}}: {{hum .Current.Pressure}} {{.PressureUnit}}\n" +
		"{{loc \"wind\"}}: {{hum .Current.WindSpeed}} {{.WindUnit}} {{windDirIcon .Current.WindBearing}} ({{.Current.WindBearing}})\n" +
		"{{if .HasSunTimes}}\n🌅 {{localizedTime .SunriseTime}} • 🌇 {{localizedTime .SunsetTime}}\n{{end}}" +
		"{{.MoonPhaseIcon}} {{loc .MoonPhase}}"
	DefaultAltTooltipTpl = "{{.Location}}\n" +
		"{{loc \"forecastfor\"}} {{localizedTime .Forecast.Time}}\n" +
		"{{.Forecast.ConditionName}}\n" +
		"{{loc \"precipitation\"}}: {{hum .Forecast.Precipitation}} {{.PrecipitationUnit}}\n" +
		"{{loc \"wind\"}}: {{hum .Forecast.WindSpeed}} {{.WindUnit}} {{windDirIcon .Forecast.WindBearing}} ({{.Forecast.WindBearing}})\n" +
		"\n{{.Attribution}}"
)

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Weather struct {
		// City is the numeric Gismeteo city id
		City string `fig:"city" validate:"required"`
		Name string `fig:"name" default:"gismeteo"`
		// Allowed values: hourly, daily
		Mode          string  `fig:"mode" default:"hourly"`
		HotThreshold  float64 `fig:"hot_threshold" default:"25"`
		ColdThreshold float64 `fig:"cold_threshold"`
	} `fig:"weather"`

	// Location is only used for sunrise and sunset times
	Location struct {
		Latitude  float64 `fig:"latitude"`
		Longitude float64 `fig:"longitude"`
	} `fig:"location"`

	Intervals struct {
		WeatherUpdate time.Duration `fig:"weather_update" default:"15m"`
		Output        time.Duration `fig:"output" default:"30s"`
	} `fig:"intervals"`

	Templates struct {
		Text       string `fig:"text"`
		AltText    string `fig:"alt_text"`
		Tooltip    string `fig:"tooltip"`
		AltTooltip string `fig:"alt_tooltip"`
	} `fig:"templates"`

	Metrics struct {
		// Listen enables the Prometheus endpoint when set, e.g. "127.0.0.1:9721"
		Listen string `fig:"listen"`
	} `fig:"metrics"`

	System struct {
		DisableResumeRefresh bool `fig:"disable_resume_refresh"`
	} `fig:"system"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if strings.Trim(c.Weather.City, "0123456789") != "" {
		return fmt.Errorf("invalid city id: %s", c.Weather.City)
	}
	c.Weather.Mode = strings.ToLower(c.Weather.Mode)
	if c.Weather.Mode != "hourly" && c.Weather.Mode != "daily" {
		return fmt.Errorf("invalid weather mode: %s", c.Weather.Mode)
	}
	if c.Weather.ColdThreshold >= c.Weather.HotThreshold {
		return fmt.Errorf("cold threshold %.1f must be below hot threshold %.1f", c.Weather.ColdThreshold,
			c.Weather.HotThreshold)
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("invalid latitude: %f", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("invalid longitude: %f", c.Location.Longitude)
	}
	if c.Intervals.WeatherUpdate < MinWeatherUpdate {
		return fmt.Errorf("weather update interval must be at least %s, got %s", MinWeatherUpdate,
			c.Intervals.WeatherUpdate)
	}
	if c.Intervals.Output <= 0 {
		return fmt.Errorf("invalid output interval: %s", c.Intervals.Output)
	}
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.Templates.Text == "" {
		c.Templates.Text = DefaultTextTpl
	}
	if c.Templates.AltText == "" {
		c.Templates.AltText = DefaultAltTextTpl
	}
	if c.Templates.Tooltip == "" {
		c.Templates.Tooltip = DefaultTooltipTpl
	}
	if c.Templates.AltTooltip == "" {
		c.Templates.AltTooltip = DefaultAltTooltipTpl
	}

	return nil
}

// HasCoordinates reports whether a location for sunrise and sunset calculation is configured.
func (c *Config) HasCoordinates() bool {
	return c.Location.Latitude != 0 || c.Location.Longitude != 0
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
