// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package job

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

const testCooldown = time.Minute * 5

type testType struct {
	count atomic.Int32
}

func (t *testType) testFunc(context.Context) {
	t.count.Add(1)
}

func TestNew(t *testing.T) {
	job := New(testCooldown, func(context.Context) {})
	if job == nil {
		t.Fatal("expected job to be non-nil")
	}
}

func TestJob_Run(t *testing.T) {
	t.Run("first run is executed", func(t *testing.T) {
		tester := &testType{}
		job := New(testCooldown, tester.testFunc, WithClock(clockwork.NewFakeClock()))
		if !job.Run(t.Context()) {
			t.Fatal("expected job to run")
		}
		if tester.count.Load() != 1 {
			t.Errorf("expected job to execute once, got %d", tester.count.Load())
		}
	})
	t.Run("runs within the cooldown are skipped", func(t *testing.T) {
		tester := &testType{}
		clock := clockwork.NewFakeClock()
		job := New(testCooldown, tester.testFunc, WithClock(clock))
		job.Run(t.Context())
		clock.Advance(testCooldown - time.Second)
		if job.Run(t.Context()) {
			t.Error("expected job to be skipped within the cooldown")
		}
		if job.Ready() {
			t.Error("expected job to not be ready within the cooldown")
		}
		clock.Advance(time.Second)
		if !job.Ready() {
			t.Error("expected job to be ready after the cooldown")
		}
		if !job.Run(t.Context()) {
			t.Error("expected job to run after the cooldown")
		}
		if tester.count.Load() != 2 {
			t.Errorf("expected job to execute twice, got %d", tester.count.Load())
		}
	})
	t.Run("overlapping runs are skipped", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		job := New(0, func(context.Context) {
			close(started)
			<-release
		})
		done := make(chan bool)
		go func() { done <- job.Run(t.Context()) }()
		<-started
		if job.Run(t.Context()) {
			t.Error("expected overlapping run to be skipped")
		}
		if job.Force(t.Context()) {
			t.Error("expected overlapping forced run to be skipped")
		}
		close(release)
		if !<-done {
			t.Error("expected first run to be executed")
		}
	})
	t.Run("nil task does not run", func(t *testing.T) {
		job := New(testCooldown, nil)
		if job.Run(t.Context()) || job.Force(t.Context()) {
			t.Error("expected nil task to not run")
		}
	})
}

func TestJob_Force(t *testing.T) {
	t.Run("forced run ignores the cooldown", func(t *testing.T) {
		tester := &testType{}
		clock := clockwork.NewFakeClock()
		job := New(testCooldown, tester.testFunc, WithClock(clock))
		job.Run(t.Context())
		clock.Advance(time.Minute)
		if !job.Force(t.Context()) {
			t.Fatal("expected forced job to run")
		}
		if tester.count.Load() != 2 {
			t.Errorf("expected job to execute twice, got %d", tester.count.Load())
		}
	})
	t.Run("forced run restarts the cooldown", func(t *testing.T) {
		tester := &testType{}
		clock := clockwork.NewFakeClock()
		job := New(testCooldown, tester.testFunc, WithClock(clock))
		job.Force(t.Context())
		clock.Advance(testCooldown - time.Second)
		if job.Run(t.Context()) {
			t.Error("expected job to be skipped within the cooldown of the forced run")
		}
		clock.Advance(time.Second)
		if !job.Run(t.Context()) {
			t.Error("expected job to run after the cooldown of the forced run")
		}
	})
}
