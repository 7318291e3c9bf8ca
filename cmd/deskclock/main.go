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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/DeskClockProject/deskclock-core/pkg/assets"
	"github.com/DeskClockProject/deskclock-core/pkg/config"
	"github.com/DeskClockProject/deskclock-core/pkg/helpers"
	"github.com/DeskClockProject/deskclock-core/pkg/service"
	"github.com/DeskClockProject/deskclock-core/pkg/ui/systray"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Startup is fail-fast: any fault before the tray is up exits non-zero
// rather than running a half-initialized clock. Once running, only the
// user quitting stops the process.
func main() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	err := helpers.InitLogging([]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(afero.NewOsFs(), helpers.ConfigDir(), config.BaseDefaults)
	if err != nil {
		log.Error().Err(err).Msg("error loading settings")
		os.Exit(1)
	}

	core, stopSvc := service.Start(cfg, service.SyncerOpts{})

	go func() {
		<-sigs
		if stopErr := stopSvc(); stopErr != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}()

	systray.Run(core, assets.SystrayIcon, func() {
		if stopErr := stopSvc(); stopErr != nil {
			os.Exit(1)
		}
		os.Exit(0)
	})
}
