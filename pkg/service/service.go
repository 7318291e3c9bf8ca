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

// Package service wires the clock core together and owns the lifetime
// of the background sync goroutine.
package service

import (
	"context"
	"time"

	"github.com/DeskClockProject/deskclock-core/pkg/clock"
	"github.com/DeskClockProject/deskclock-core/pkg/config"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Core holds the running pieces the presentation shell consumes.
type Core struct {
	Config *config.Instance
	Source *clock.Source
	Syncer *Syncer
}

// Start builds the time source and launches the sync goroutine. Zero
// opts fields fall back to the app defaults. The returned stop function
// cancels the sync loop, waits for it to finish, and persists settings;
// it is safe to call once at shutdown.
func Start(cfg *config.Instance, opts SyncerOpts) (*Core, func() error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	offset := clock.NewOffset()

	src := clock.NewSource(
		opts.Clock,
		offset,
		func() time.Duration { return clock.Seconds(cfg.ManualOffset()) },
		clock.DisplayZone(cfg.Zone()),
	)

	syncer := NewSyncer(offset, opts)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		syncer.Run(ctx)
	}()

	log.Info().Msg("service started")

	stop := func() error {
		cancel()
		<-done

		// Settings save on exit, same as the dialog accept path. A write
		// failure only loses persistence; it never turns a normal quit
		// into an error exit.
		if err := cfg.Save(); err != nil {
			log.Error().Err(err).Msg("failed to save settings on exit")
		}

		log.Info().Msg("service stopped")
		return nil
	}

	return &Core{
		Config: cfg,
		Source: src,
		Syncer: syncer,
	}, stop
}
