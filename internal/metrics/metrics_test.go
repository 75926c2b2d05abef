// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/wneessen/gismeteo-weather/internal/weather"
)

func TestNew(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("expected metrics to be non-nil")
	}
	if m.Registry() == nil {
		t.Fatal("expected registry to be non-nil")
	}
}

func TestMetrics_ObserveFetch(t *testing.T) {
	m := New()
	m.ObserveFetch("gismeteo", time.Millisecond*250, nil)
	m.ObserveFetch("gismeteo", time.Second, nil)
	m.ObserveFetch("gismeteo", time.Second*10, errors.New("intentionally failing"))

	if got := testutil.ToFloat64(m.fetchesTotal.WithLabelValues("gismeteo", StatusSuccess)); got != 2 {
		t.Errorf("expected 2 successful fetches, got %f", got)
	}
	if got := testutil.ToFloat64(m.fetchesTotal.WithLabelValues("gismeteo", StatusError)); got != 1 {
		t.Errorf("expected 1 failed fetch, got %f", got)
	}
	if got := testutil.CollectAndCount(m.fetchLatency); got != 1 {
		t.Errorf("expected 1 latency histogram, got %d", got)
	}
}

func TestMetrics_ObserveSnapshot(t *testing.T) {
	t.Run("snapshot is recorded", func(t *testing.T) {
		m := New()
		data := weather.NewData(weather.ModeHourly)
		data.GeneratedAt = time.Unix(1748768400, 0)
		data.Current = weather.Observation{Temperature: 18.4, Condition: weather.ConditionSunny}
		data.Forecast = []weather.ForecastEntry{
			{Condition: weather.ConditionSunny},
			{Condition: weather.ConditionRainy},
			{Condition: weather.ConditionUnknown},
		}
		m.ObserveSnapshot(data)

		if got := testutil.ToFloat64(m.forecastEntries); got != 3 {
			t.Errorf("expected 3 forecast entries, got %f", got)
		}
		if got := testutil.ToFloat64(m.lastUpdate); got != 1748768400 {
			t.Errorf("expected last update timestamp 1748768400, got %f", got)
		}
		if got := testutil.ToFloat64(m.currentTemperature); got != 18.4 {
			t.Errorf("expected current temperature 18.4, got %f", got)
		}
		if got := testutil.ToFloat64(m.conditionsTotal.WithLabelValues("sunny")); got != 2 {
			t.Errorf("expected 2 sunny conditions, got %f", got)
		}
		if got := testutil.ToFloat64(m.conditionsTotal.WithLabelValues("unknown")); got != 1 {
			t.Errorf("expected 1 unknown condition, got %f", got)
		}
	})
	t.Run("nil snapshot is ignored", func(t *testing.T) {
		m := New()
		m.ObserveSnapshot(nil)
		if got := testutil.CollectAndCount(m.conditionsTotal); got != 0 {
			t.Errorf("expected no conditions, got %d", got)
		}
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveFetch("gismeteo", time.Second, nil)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status code 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `gismeteo_weather_fetches_total{provider="gismeteo",status="success"} 1`) {
		t.Errorf("expected fetch counter in output, got %s", body)
	}
}
