// Zaparoo EmuLibrary
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo EmuLibrary.
//
// Zaparoo EmuLibrary is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo EmuLibrary is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo EmuLibrary.  If not, see <http://www.gnu.org/licenses/>.

// Package catalog describes the emulators, emulator profiles and platforms a
// host application makes available. Mappings only hold identifiers into the
// catalog; names are looked up on demand and never cached by the settings
// store.
package catalog

import (
	"github.com/google/uuid"
)

type Profile struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
}

type Emulator struct {
	Name     string    `toml:"name" yaml:"name"`
	Profiles []Profile `toml:"profiles,omitempty" yaml:"profiles,omitempty"`
	ID       uuid.UUID `toml:"id" yaml:"id"`
}

type Platform struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
}

// Catalog is the read-only view of the host's emulation database. Every call
// returns a fresh snapshot ordered by name.
type Catalog interface {
	Emulators() []Emulator
	// Profiles returns the selectable profiles of an emulator, or nil if
	// the emulator is unknown.
	Profiles(emulatorID uuid.UUID) []Profile
	Platforms() []Platform
}

// FindEmulator looks up an emulator by ID.
func FindEmulator(c Catalog, id uuid.UUID) (Emulator, bool) {
	if c == nil || id == uuid.Nil {
		return Emulator{}, false
	}
	for _, e := range c.Emulators() {
		if e.ID == id {
			return e, true
		}
	}
	return Emulator{}, false
}

// FindProfile looks up a profile in the profile list of a single emulator.
// Profile IDs are only unique per emulator.
func FindProfile(c Catalog, emulatorID uuid.UUID, profileID string) (Profile, bool) {
	if c == nil || emulatorID == uuid.Nil || profileID == "" {
		return Profile{}, false
	}
	for _, p := range c.Profiles(emulatorID) {
		if p.ID == profileID {
			return p, true
		}
	}
	return Profile{}, false
}

// FindPlatform looks up a platform by ID.
func FindPlatform(c Catalog, id string) (Platform, bool) {
	if c == nil || id == "" {
		return Platform{}, false
	}
	for _, p := range c.Platforms() {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}
