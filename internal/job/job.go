// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package job

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Job represents a task that runs at most once per cooldown period and never overlaps with
// itself (singleton mode).
type Job struct {
	cooldown time.Duration
	task     func(context.Context)
	clock    clockwork.Clock

	// sem is a 1-slot semaphore that guards "is a run in progress?"
	sem chan struct{}

	limiterLock sync.Mutex
	limiter     *rate.Limiter
}

// Option configures a Job.
type Option func(*Job)

// WithClock replaces the wall clock the cooldown is measured with.
func WithClock(clock clockwork.Clock) Option {
	return func(j *Job) {
		j.clock = clock
	}
}

// New creates a new Job with the given cooldown and task.
func New(cooldown time.Duration, task func(context.Context), opts ...Option) *Job {
	job := &Job{
		cooldown: cooldown,
		task:     task,
		clock:    clockwork.NewRealClock(),
		sem:      make(chan struct{}, 1),
		limiter:  rate.NewLimiter(rate.Every(cooldown), 1),
	}
	for _, opt := range opts {
		opt(job)
	}
	return job
}

// Run executes the task unless it already ran within the cooldown period or is still running.
// It reports whether the task was executed.
func (j *Job) Run(ctx context.Context) bool {
	if j.task == nil {
		return false
	}
	select {
	case j.sem <- struct{}{}:
	default:
		return false
	}
	defer func() { <-j.sem }()

	j.limiterLock.Lock()
	allowed := j.cooldown <= 0 || j.limiter.AllowN(j.clock.Now(), 1)
	j.limiterLock.Unlock()
	if !allowed {
		return false
	}

	j.task(ctx)
	return true
}

// Force executes the task regardless of the cooldown and starts a new cooldown period. It still
// returns false without running if a previous run is in progress.
func (j *Job) Force(ctx context.Context) bool {
	if j.task == nil {
		return false
	}
	select {
	case j.sem <- struct{}{}:
	default:
		return false
	}
	defer func() { <-j.sem }()

	j.limiterLock.Lock()
	j.limiter = rate.NewLimiter(rate.Every(j.cooldown), 1)
	j.limiter.AllowN(j.clock.Now(), 1)
	j.limiterLock.Unlock()

	j.task(ctx)
	return true
}

// Ready reports whether the cooldown has elapsed. A run in progress does not affect it.
func (j *Job) Ready() bool {
	j.limiterLock.Lock()
	defer j.limiterLock.Unlock()
	return j.cooldown <= 0 || j.limiter.TokensAt(j.clock.Now()) >= 1
}
