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

package clock

import (
	"time"

	"github.com/DeskClockProject/deskclock-core/pkg/helpers/syncutil"
)

// Offset is the network-derived clock correction shared between the sync
// goroutine (single writer) and the display path (single reader). Access
// is only through Get and Set so nothing else can touch the raw value
// unsynchronized.
type Offset struct {
	mu syncutil.RWMutex
	d  time.Duration
}

// NewOffset returns an offset cell starting at zero, the value used
// until the first successful sync.
func NewOffset() *Offset {
	return &Offset{}
}

// Get returns the current correction.
func (o *Offset) Get() time.Duration {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.d
}

// Set replaces the current correction.
func (o *Offset) Set(d time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.d = d
}
