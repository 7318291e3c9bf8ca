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

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DeskClockProject/deskclock-core/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Values is the flat settings record persisted as a single JSON object.
// Field names match the on-disk keys of the original settings file, so an
// existing config.json keeps working.
type Values struct {
	Pos     *[2]int `json:"pos,omitempty"`
	Color   string  `json:"color"`
	Zone    string  `json:"zone,omitempty"`
	Font    float64 `json:"font"`
	Opacity float64 `json:"opacity"`
	Spacing float64 `json:"spacing"`
	Offset  float64 `json:"offset"`
	Top     bool    `json:"top"`
}

// BaseDefaults are used for any field missing from the settings file.
var BaseDefaults = Values{
	Font:    10,
	Opacity: 90,
	Spacing: 2,
	Color:   "white",
	Top:     true,
	Offset:  0,
}

// Instance owns the settings record for the process. All access goes
// through accessors so the tray/dialog path and the clock path never
// share an unsynchronized struct.
type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

//nolint:gocritic // defaults struct copied for immutability
func NewConfig(fs afero.Fs, configDir string, defaults Values) (*Instance, error) {
	cfgPath := filepath.Join(configDir, CfgFile)

	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := fs.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	cfg.Load()

	return &cfg, nil
}

// Load reads the settings file over a copy of defaults. Any failure mode
// (missing file, unreadable, malformed JSON) falls back to defaults for
// the whole record; a well-formed file with missing keys falls back
// field-by-field. Load never fails: the clock must come up with whatever
// settings it can get.
func (c *Instance) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Start with defaults, then unmarshal file values on top. Fields not
	// present in the file keep their default values; unknown keys in the
	// file are ignored.
	newVals := c.defaults

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read settings file, using defaults")
		c.vals = newVals
		return
	}

	err = json.Unmarshal(data, &newVals)
	if err != nil {
		log.Warn().Err(err).Msg("malformed settings file, using defaults")
		c.vals = c.defaults
		return
	}

	c.vals = newVals
}

// Save overwrites the whole settings file with the current record,
// indented for hand editing.
func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := json.MarshalIndent(&c.vals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Path returns the location of the settings file on disk.
func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) FontSize() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Font
}

func (c *Instance) SetFontSize(pt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Font = pt
}

func (c *Instance) Opacity() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Opacity
}

func (c *Instance) SetOpacity(pct float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Opacity = pct
}

func (c *Instance) Spacing() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Spacing
}

func (c *Instance) SetSpacing(px float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Spacing = px
}

func (c *Instance) Color() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Color
}

func (c *Instance) SetColor(color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Color = color
}

func (c *Instance) Topmost() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Top
}

func (c *Instance) SetTopmost(top bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Top = top
}

// ManualOffset is the user-entered correction in seconds, applied on top
// of the network offset. It is not clamped here; the settings UI bounds
// its input range.
func (c *Instance) ManualOffset() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Offset
}

func (c *Instance) SetManualOffset(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Offset = seconds
}

// WindowPos returns the saved window position, or ok=false if none has
// been recorded yet.
func (c *Instance) WindowPos() (x, y int, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Pos == nil {
		return 0, 0, false
	}
	return c.vals.Pos[0], c.vals.Pos[1], true
}

func (c *Instance) SetWindowPos(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Pos = &[2]int{x, y}
}

// Zone is the IANA name of the display time zone, empty for the
// compatibility default (fixed UTC+8).
func (c *Instance) Zone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Zone
}

func (c *Instance) SetZone(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Zone = name
}
