// DeskClock Core
// Copyright (c) 2026 The DeskClock Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of DeskClock Core.
//
// DeskClock Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DeskClock Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DeskClock Core.  If not, see <http://www.gnu.org/licenses/>.

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DeskClockProject/deskclock-core/pkg/clock"
	"github.com/DeskClockProject/deskclock-core/pkg/config"
	"github.com/DeskClockProject/deskclock-core/pkg/helpers/syncutil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of one sync attempt. Err is nil on success.
type Result struct {
	ServerTime time.Time
	Err        error
	Offset     time.Duration
}

// OK reports whether the attempt produced a usable server time.
func (r Result) OK() bool {
	return r.Err == nil
}

// SyncerOpts configure a Syncer. Zero values fall back to the app
// defaults, so tests can override only what they exercise.
type SyncerOpts struct {
	Client   *http.Client
	Clock    clockwork.Clock
	URL      string
	Interval time.Duration
	Timeout  time.Duration
}

// Syncer periodically derives the network clock offset from an HTTP
// Date header. It runs for the life of the process: every failure mode
// is logged and retried on the next interval, never surfaced to the
// user. If the endpoint is unreachable forever, the clock simply runs
// on system time plus the manual offset.
//
// A real NTP exchange would be overkill for a display clock. Reading
// one response header biases the offset by about half the round-trip
// time, which is well inside what a seconds-resolution display can
// show.
type Syncer struct {
	client   *http.Client
	clock    clockwork.Clock
	offset   *clock.Offset
	trigger  chan struct{}
	url      string
	interval time.Duration
	timeout  time.Duration

	mu     syncutil.RWMutex
	last   Result
	lastAt time.Time
}

// NewSyncer creates a syncer writing to the given offset cell, which it
// treats as its exclusive property.
func NewSyncer(offset *clock.Offset, opts SyncerOpts) *Syncer {
	if opts.URL == "" {
		opts.URL = config.SyncURL
	}
	if opts.Interval == 0 {
		opts.Interval = config.SyncInterval
	}
	if opts.Timeout == 0 {
		opts.Timeout = config.SyncTimeout
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	return &Syncer{
		client:   opts.Client,
		clock:    opts.Clock,
		offset:   offset,
		trigger:  make(chan struct{}, 1),
		url:      opts.URL,
		interval: opts.Interval,
		timeout:  opts.Timeout,
	}
}

// Run syncs once immediately, then once per interval until ctx is
// cancelled. Attempts are strictly sequential and the pause between
// them is unconditional, success or failure. Cancellation is honored
// both between attempts and during an in-flight request.
func (s *Syncer) Run(ctx context.Context) {
	s.sync(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("time sync loop stopped")
			return
		case <-s.clock.After(s.interval):
			s.sync(ctx)
		case <-s.trigger:
			s.sync(ctx)
		}
	}
}

// SyncNow requests an immediate attempt outside the regular interval.
// It never blocks; a request while one is already pending is dropped.
func (s *Syncer) SyncNow() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// LastResult returns the most recent attempt outcome and when it
// finished, for status display.
func (s *Syncer) LastResult() (Result, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.lastAt
}

func (s *Syncer) sync(ctx context.Context) {
	res := s.attempt(ctx)

	if res.OK() {
		s.offset.Set(res.Offset)
		log.Info().
			Str("server_time", res.ServerTime.Format(time.RFC3339)).
			Dur("offset", res.Offset).
			Msg("time sync succeeded")
	} else if !errors.Is(res.Err, context.Canceled) {
		// Failed attempts leave the last good offset in place.
		log.Warn().Err(res.Err).Msg("time sync failed")
	}

	s.mu.Lock()
	s.last = res
	s.lastAt = s.clock.Now()
	s.mu.Unlock()
}

// attempt performs a single HEAD request and derives the offset from
// the response Date header against the local instant recorded before
// the request went out.
func (s *Syncer) attempt(ctx context.Context) Result {
	local := s.clock.Now().UTC()

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, s.url, nil)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to create sync request: %w", err)}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("sync request failed: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	date := resp.Header.Get("Date")
	if date == "" {
		return Result{Err: errors.New("sync response has no Date header")}
	}

	server, err := http.ParseTime(date)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to parse Date header %q: %w", date, err)}
	}

	server = server.UTC()
	return Result{
		ServerTime: server,
		Offset:     server.Sub(local),
	}
}
