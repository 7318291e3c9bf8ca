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

package config

import "time"

var AppVersion = "DEVELOPMENT"

const (
	AppName = "deskclock"
	LogFile = "core.log"
	CfgFile = "config.json"

	// SyncURL is the endpoint polled for a trusted Date header. Any
	// well-behaved HTTP server works; only the response header is read.
	SyncURL = "https://time.is/just"

	// SyncInterval is the pause between time sync attempts. It is fixed
	// and unconditional, success or failure.
	SyncInterval = 600 * time.Second

	// SyncTimeout bounds a single sync request.
	SyncTimeout = 5 * time.Second
)
