// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

const testCity = "4368"

func TestNew(t *testing.T) {
	const (
		expectLogLevel              = slog.LevelInfo
		expectWeatherName           = "gismeteo"
		expectWeatherMode           = "hourly"
		expectHotThreshold          = 25.0
		expectIntervalWeatherUpdate = time.Minute * 15
		expectIntervalOutput        = time.Second * 30
	)
	t.Run("new config with all defaults set", func(t *testing.T) {
		t.Setenv("GISMETEO_WEATHER_CITY", testCity)
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.LogLevel != expectLogLevel {
			t.Errorf("expected log level to be: %s, got %s", expectLogLevel, conf.LogLevel)
		}
		if conf.Weather.City != testCity {
			t.Errorf("expected city to be: %s, got %s", testCity, conf.Weather.City)
		}
		if conf.Weather.Name != expectWeatherName {
			t.Errorf("expected weather name to be: %s, got %s", expectWeatherName, conf.Weather.Name)
		}
		if conf.Weather.Mode != expectWeatherMode {
			t.Errorf("expected weather mode to be: %s, got %s", expectWeatherMode, conf.Weather.Mode)
		}
		if conf.Weather.HotThreshold != expectHotThreshold {
			t.Errorf("expected hot threshold to be: %f, got %f", expectHotThreshold, conf.Weather.HotThreshold)
		}
		if conf.Intervals.WeatherUpdate != expectIntervalWeatherUpdate {
			t.Errorf("expected weather update interval to be: %s, got %s", expectIntervalWeatherUpdate,
				conf.Intervals.WeatherUpdate)
		}
		if conf.Intervals.Output != expectIntervalOutput {
			t.Errorf("expected output interval to be: %s, got %s", expectIntervalOutput, conf.Intervals.Output)
		}
		if conf.Templates.Text != DefaultTextTpl {
			t.Errorf("expected default text template, got %q", conf.Templates.Text)
		}
		if conf.Templates.AltTooltip != DefaultAltTooltipTpl {
			t.Errorf("expected default alt tooltip template, got %q", conf.Templates.AltTooltip)
		}
		if conf.HasCoordinates() {
			t.Error("expected no coordinates to be configured")
		}
	})
	t.Run("new config without city fails", func(t *testing.T) {
		t.Setenv("GISMETEO_WEATHER_CITY", "")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("new config with invalid values from env", func(t *testing.T) {
		t.Setenv("GISMETEO_WEATHER_CITY", testCity)
		t.Setenv("GISMETEO_LOGLEVEL", "invalid")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("weather mode is case insensitive", func(t *testing.T) {
		t.Setenv("GISMETEO_WEATHER_CITY", testCity)
		t.Setenv("GISMETEO_WEATHER_MODE", "Daily")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Weather.Mode != "daily" {
			t.Errorf("expected weather mode to be daily, got %s", conf.Weather.Mode)
		}
	})
	t.Run("coordinates are reported", func(t *testing.T) {
		t.Setenv("GISMETEO_WEATHER_CITY", testCity)
		t.Setenv("GISMETEO_LOCATION_LATITUDE", "55.75")
		t.Setenv("GISMETEO_LOCATION_LONGITUDE", "37.61")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if !conf.HasCoordinates() {
			t.Error("expected coordinates to be configured")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"non-numeric city", map[string]string{"GISMETEO_WEATHER_CITY": "moscow"}, "invalid city id"},
		{"unknown mode", map[string]string{"GISMETEO_WEATHER_MODE": "weekly"}, "invalid weather mode"},
		{
			"cold threshold above hot threshold",
			map[string]string{"GISMETEO_WEATHER_COLD_THRESHOLD": "30"},
			"must be below hot threshold",
		},
		{"latitude out of range", map[string]string{"GISMETEO_LOCATION_LATITUDE": "91"}, "invalid latitude"},
		{"longitude out of range", map[string]string{"GISMETEO_LOCATION_LONGITUDE": "-181"}, "invalid longitude"},
		{
			"weather update below minimum",
			map[string]string{"GISMETEO_INTERVALS_WEATHER_UPDATE": "4m59s"},
			"must be at least 5m0s",
		},
		{"zero output interval", map[string]string{"GISMETEO_INTERVALS_OUTPUT": "0s"}, "invalid output interval"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GISMETEO_WEATHER_CITY", testCity)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			_, err := New()
			if err == nil {
				t.Fatal("expected config to fail, but didn't")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error to contain %q, got %q", tc.wantErr, err)
			}
		})
	}
	t.Run("minimum weather update interval is accepted", func(t *testing.T) {
		t.Setenv("GISMETEO_WEATHER_CITY", testCity)
		t.Setenv("GISMETEO_INTERVALS_WEATHER_UPDATE", "5m")
		if _, err := New(); err != nil {
			t.Errorf("expected config to succeed, got %s", err)
		}
	})
}

func TestNewFromFile(t *testing.T) {
	t.Run("reading config from valid file succeeds", func(t *testing.T) {
		conf, err := NewFromFile("../../etc", "config.toml")
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Weather.City != testCity {
			t.Errorf("expected city to be: %s, got %s", testCity, conf.Weather.City)
		}
		if conf.LogLevel != slog.LevelInfo {
			t.Errorf("expected log level to be: %s, got %s", slog.LevelInfo, conf.LogLevel)
		}
		if conf.Intervals.WeatherUpdate != time.Minute*15 {
			t.Errorf("expected weather update interval to be 15m, got %s", conf.Intervals.WeatherUpdate)
		}
		if !conf.HasCoordinates() {
			t.Error("expected coordinates to be configured")
		}
		if conf.Templates.Tooltip != DefaultTooltipTpl {
			t.Errorf("expected default tooltip template, got %q", conf.Templates.Tooltip)
		}
	})
	t.Run("environment overrides the config file", func(t *testing.T) {
		t.Setenv("GISMETEO_WEATHER_MODE", "daily")
		conf, err := NewFromFile("../../etc", "config.toml")
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Weather.Mode != "daily" {
			t.Errorf("expected weather mode to be daily, got %s", conf.Weather.Mode)
		}
	})
	t.Run("reading config from non-existent file fails", func(t *testing.T) {
		_, err := NewFromFile("../../etc", "non-existent.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("reading invalid config file fails", func(t *testing.T) {
		_, err := NewFromFile("../../testdata", "invalid.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
}
