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
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceNow_OffsetIdentity(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 25, 4, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		network time.Duration
		manual  time.Duration
	}{
		{name: "no offsets", network: 0, manual: 0},
		{name: "network only", network: 3 * time.Second, manual: 0},
		{name: "manual only", network: 0, manual: -7 * time.Second},
		{name: "both positive", network: 2 * time.Second, manual: 5 * time.Second},
		{name: "both negative", network: -90 * time.Second, manual: -30 * time.Second},
		{name: "cancelling", network: 10 * time.Second, manual: -10 * time.Second},
		{name: "sub-second", network: 3500 * time.Millisecond, manual: 250 * time.Millisecond},
		{name: "manual at UI bound", network: 0, manual: 200 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fakeClock := clockwork.NewFakeClockAt(base)
			offset := NewOffset()
			offset.Set(tt.network)
			manual := tt.manual

			src := NewSource(fakeClock, offset, func() time.Duration { return manual }, time.UTC)

			want := base.Add(tt.network).Add(tt.manual)
			assert.True(t, src.Now().Equal(want), "got %v, want %v", src.Now(), want)
		})
	}
}

func TestSourceNow_DisplayZoneConversion(t *testing.T) {
	t.Parallel()

	// 23:30 UTC renders as 07:30 the next day in the UTC+8 default zone.
	base := time.Date(2026, 8, 25, 23, 30, 0, 0, time.UTC)
	fakeClock := clockwork.NewFakeClockAt(base)

	src := NewSource(fakeClock, NewOffset(), nil, nil)

	got := src.Now()
	assert.Equal(t, "2026-08-26 Wed", got.Format("2006-01-02 Mon"))
	assert.Equal(t, "07:30:00", got.Format("15:04:05"))
	assert.True(t, got.Equal(base), "zone conversion must not change the instant")
}

func TestSourceNow_ManualOffsetReadPerCall(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fakeClock := clockwork.NewFakeClockAt(base)

	manual := time.Duration(0)
	src := NewSource(fakeClock, NewOffset(), func() time.Duration { return manual }, time.UTC)

	require.True(t, src.Now().Equal(base))

	// A settings change takes effect on the next tick, no rebuild needed.
	manual = 42 * time.Second
	assert.True(t, src.Now().Equal(base.Add(42*time.Second)))
}

func TestSourceLines(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 25, 12, 34, 56, 0, time.UTC)
	fakeClock := clockwork.NewFakeClockAt(base)

	src := NewSource(fakeClock, NewOffset(), nil, time.UTC)

	assert.Equal(t, "2026-08-25 Tue", src.DateLine())
	assert.Equal(t, "12:34:56", src.TimeLine())
}

func TestDisplayZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		zone       string
		wantOffset int
	}{
		{name: "empty uses UTC+8 default", zone: "", wantOffset: 8 * 60 * 60},
		{name: "UTC resolves", zone: "UTC", wantOffset: 0},
		{name: "unknown falls back to default", zone: "Nowhere/Invalid", wantOffset: 8 * 60 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc := DisplayZone(tt.zone)
			require.NotNil(t, loc)

			_, gotOffset := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).In(loc).Zone()
			assert.Equal(t, tt.wantOffset, gotOffset)
		})
	}
}

func TestSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3500*time.Millisecond, Seconds(3.5))
	assert.Equal(t, -200*time.Second, Seconds(-200))
	assert.Equal(t, time.Duration(0), Seconds(0))
}
