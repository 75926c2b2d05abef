// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/wneessen/gismeteo-weather/internal/logger"
)

const (
	dbusInterface   = "org.freedesktop.login1.Manager"
	dbusWatchMember = "PrepareForSleep"

	signalBufferSize = 8

	busReconnectDelay  = 5 * time.Second
	networkWakeupDelay = 10 * time.Second
	subscribeDelay     = 10 * time.Second
)

// monitorSleepResume refreshes the weather data when the system resumes from suspend. Lost bus
// connections are re-established until the context is canceled.
func (s *Service) monitorSleepResume(ctx context.Context) {
	for {
		conn, ok := s.subscribeSleepSignal(ctx)
		if !ok {
			return
		}

		sigCh := make(chan *dbus.Signal, signalBufferSize)
		conn.Signal(sigCh)
		s.logger.Debug("subscribed to dbus signal", slog.String("interface", dbusInterface),
			slog.String("member", dbusWatchMember))
		s.watchSleepSignals(ctx, sigCh)

		conn.RemoveSignal(sigCh)
		if err := conn.Close(); err != nil {
			s.logger.Debug("failed to close system bus connection", logger.Err(err))
		}
		if !s.wait(ctx, busReconnectDelay) {
			return
		}
	}
}

// subscribeSleepSignal connects to the system bus and adds the match rule for the sleep signal.
// It retries until it succeeds or the context is canceled.
func (s *Service) subscribeSleepSignal(ctx context.Context) (*dbus.Conn, bool) {
	for {
		conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
		if err != nil {
			s.logger.Debug("failed to connect to system bus", logger.Err(err))
			if !s.wait(ctx, busReconnectDelay) {
				return nil, false
			}
			continue
		}

		err = conn.AddMatchSignal(dbus.WithMatchInterface(dbusInterface), dbus.WithMatchMember(dbusWatchMember))
		if err == nil {
			return conn, true
		}
		s.logger.Error("failed to subscribe to dbus signal", slog.String("interface", dbusInterface),
			slog.String("member", dbusWatchMember), logger.Err(err))
		if err = conn.Close(); err != nil {
			s.logger.Debug("failed to close system bus connection", logger.Err(err))
		}
		if !s.wait(ctx, subscribeDelay) {
			return nil, false
		}
	}
}

// watchSleepSignals handles sleep signals until the channel is closed or the context is canceled.
func (s *Service) watchSleepSignals(ctx context.Context, sigCh <-chan *dbus.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sgn, ok := <-sigCh:
			if !ok {
				return
			}
			if isResumeSignal(sgn) {
				s.handleResume(ctx)
			}
		}
	}
}

// isResumeSignal reports whether the signal announces the end of a suspend. PrepareForSleep
// carries true before and false after sleeping.
func isResumeSignal(sgn *dbus.Signal) bool {
	if sgn == nil || len(sgn.Body) != 1 {
		return false
	}
	sleeping, ok := sgn.Body[0].(bool)
	return ok && !sleeping
}

// handleResume waits for the network to come up and refreshes the weather data. Repeated resume
// events are absorbed by the minimum update interval.
func (s *Service) handleResume(ctx context.Context) {
	if !s.wait(ctx, networkWakeupDelay) {
		return
	}
	s.logger.Debug("resumed from sleep, refreshing weather data")
	s.refreshWeather(ctx, "resume")
}

// wait blocks for the given duration and reports false if the context was canceled first.
func (s *Service) wait(ctx context.Context, delay time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-s.clock.After(delay):
		return true
	}
}
