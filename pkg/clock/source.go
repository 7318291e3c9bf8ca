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

// Package clock computes the displayed time from the system clock plus
// the network and manual corrections.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	dateLayout = "2006-01-02 Mon"
	timeLayout = "15:04:05"
)

// defaultZone matches the original settings file behavior, which always
// rendered in UTC+8. Used whenever no zone is configured or the
// configured name doesn't resolve.
var defaultZone = time.FixedZone("UTC+8", 8*60*60)

// Source derives the displayed instant. It is a pure function of the
// system clock and the two offsets: it schedules nothing and cannot
// fail. Callers re-invoke it once per second.
type Source struct {
	clock   clockwork.Clock
	network *Offset
	manual  func() time.Duration
	zone    *time.Location
}

// NewSource creates a time source. manual is read on every call so
// settings changes take effect on the next tick; nil means no manual
// correction. A nil zone falls back to the UTC+8 default.
func NewSource(
	clk clockwork.Clock,
	network *Offset,
	manual func() time.Duration,
	zone *time.Location,
) *Source {
	if zone == nil {
		zone = defaultZone
	}
	return &Source{
		clock:   clk,
		network: network,
		manual:  manual,
		zone:    zone,
	}
}

// Now returns system time plus network offset plus manual offset,
// converted to the display zone.
func (s *Source) Now() time.Time {
	t := s.clock.Now().UTC().Add(s.network.Get())
	if s.manual != nil {
		t = t.Add(s.manual())
	}
	return t.In(s.zone)
}

// DateLine formats the date row shown above the time.
func (s *Source) DateLine() string {
	return s.Now().Format(dateLayout)
}

// TimeLine formats the time row.
func (s *Source) TimeLine() string {
	return s.Now().Format(timeLayout)
}

// DisplayZone resolves a configured IANA zone name, falling back to the
// fixed UTC+8 zone when the name is empty or unknown.
func DisplayZone(name string) *time.Location {
	if name == "" {
		return defaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Msgf("unknown display zone %q, using %s", name, defaultZone)
		return defaultZone
	}
	return loc
}

// Seconds converts a fractional seconds count, as stored in settings,
// to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
