// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package metrics provides the Prometheus collectors of the weather service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wneessen/gismeteo-weather/internal/weather"
)

const namespace = "gismeteo_weather"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the collectors registered with a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	fetchesTotal       *prometheus.CounterVec
	fetchLatency       prometheus.Histogram
	forecastEntries    prometheus.Gauge
	conditionsTotal    *prometheus.CounterVec
	lastUpdate         prometheus.Gauge
	currentTemperature prometheus.Gauge
}

// New creates a registry and registers all collectors with it.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		fetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Total weather data fetches by result",
		}, []string{"provider", "status"}),
		fetchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_latency_seconds",
			Help:      "Weather data fetch latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		forecastEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "forecast_entries",
			Help:      "Number of forecast entries in the current snapshot",
		}),
		conditionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conditions_total",
			Help:      "Classified weather conditions of fetched snapshots",
		}, []string{"condition"}),
		lastUpdate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_update_timestamp_seconds",
			Help:      "Unix time of the last successful weather data fetch",
		}),
		currentTemperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_temperature_celsius",
			Help:      "Current temperature of the last snapshot",
		}),
	}
}

// ObserveFetch records the outcome and duration of a fetch.
func (m *Metrics) ObserveFetch(provider string, took time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.fetchesTotal.WithLabelValues(provider, status).Inc()
	m.fetchLatency.Observe(took.Seconds())
}

// ObserveSnapshot records the gauges and condition counters of a fetched snapshot.
func (m *Metrics) ObserveSnapshot(data *weather.Data) {
	if data == nil {
		return
	}
	m.lastUpdate.Set(float64(data.GeneratedAt.Unix()))
	m.currentTemperature.Set(data.Current.Temperature)
	m.forecastEntries.Set(float64(len(data.Forecast)))
	m.conditionsTotal.WithLabelValues(string(data.Current.Condition)).Inc()
	for _, entry := range data.Forecast {
		m.conditionsTotal.WithLabelValues(string(entry.Condition)).Inc()
	}
}

// Handler returns the HTTP handler serving the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

// Registry returns the registry the collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
