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

package systray

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"fyne.io/systray"
	"github.com/DeskClockProject/deskclock-core/pkg/config"
	"github.com/DeskClockProject/deskclock-core/pkg/helpers"
	"github.com/DeskClockProject/deskclock-core/pkg/service"
	"github.com/nixinwang/dialog"
	"github.com/rs/zerolog/log"
	"golang.design/x/clipboard"
)

func syncStatus(core *service.Core) string {
	res, at := core.Syncer.LastResult()
	switch {
	case at.IsZero():
		return "Sync: pending"
	case res.OK():
		return "Sync: ok " + at.Format("15:04")
	default:
		return "Sync: failed " + at.Format("15:04")
	}
}

func systrayOnReady(core *service.Core, icon []byte) func() {
	return func() {
		openCmd := ""
		if runtime.GOOS == "windows" {
			openCmd = "explorer"
		} else if runtime.GOOS == "darwin" {
			openCmd = "open"
		} else {
			openCmd = "xdg-open"
		}

		systray.SetIcon(icon)
		systray.SetTitle(core.Source.TimeLine())
		systray.SetTooltip(core.Source.DateLine())

		mCopyTime := systray.AddMenuItem("Copy Time", "Copy the displayed time to the clipboard")
		mSyncNow := systray.AddMenuItem("Sync Now", "Sync with the time server immediately")
		systray.AddSeparator()

		mEditConfig := systray.AddMenuItem("Edit Settings", "Edit the settings file")
		mReloadConfig := systray.AddMenuItem("Reload", "Reload the settings file")
		mOpenLog := systray.AddMenuItem("View Log", "View the log file")

		systray.AddSeparator()
		mVersion := systray.AddMenuItem("Version "+config.AppVersion, "")
		mVersion.Disable()
		mAbout := systray.AddMenuItem("About DeskClock", "")

		systray.AddSeparator()
		mQuit := systray.AddMenuItem("Quit", "Quit DeskClock")

		go func() {
			// The per-second tick only formats an already-computed value.
			// Network I/O stays on the sync goroutine so a slow sync can
			// never stall the display.
			tick := time.NewTicker(time.Second)
			defer tick.Stop()

			for {
				select {
				case <-tick.C:
					systray.SetTitle(core.Source.TimeLine())
					systray.SetTooltip(core.Source.DateLine() + "\n" + syncStatus(core))
				case <-mCopyTime.ClickedCh:
					err := clipboard.Init()
					if err != nil {
						log.Error().Err(err).Msg("failed to initialize clipboard")
						continue
					}
					now := core.Source.DateLine() + " " + core.Source.TimeLine()
					clipboard.Write(clipboard.FmtText, []byte(now))
				case <-mSyncNow.ClickedCh:
					core.Syncer.SyncNow()
				case <-mEditConfig.ClickedCh:
					err := exec.Command(openCmd, core.Config.Path()).Start()
					if err != nil {
						log.Error().Err(err).Msg("failed to open settings file")
					}
				case <-mReloadConfig.ClickedCh:
					core.Config.Load()
					log.Info().Msg("reloaded settings")
				case <-mOpenLog.ClickedCh:
					err := exec.Command(openCmd, filepath.Join(helpers.TempDir(), config.LogFile)).Start()
					if err != nil {
						log.Error().Err(err).Msg("failed to open log file")
					}
				case <-mAbout.ClickedCh:
					msg := "DeskClock Core\n" +
						"Version v%s\n\n" +
						"© %d DeskClock Contributors\n" +
						"License: GPLv3"
					dialog.Message(msg, config.AppVersion, time.Now().Year()).
						Title("About DeskClock").Info()
				case <-mQuit.ClickedCh:
					systray.Quit()
					return
				}
			}
		}()
	}
}

// Run shows the tray icon and blocks until Quit; exit runs afterwards.
func Run(core *service.Core, icon []byte, exit func()) {
	systray.Run(systrayOnReady(core, icon), exit)
}
