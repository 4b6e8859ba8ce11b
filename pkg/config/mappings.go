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

package config

import (
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/install"
	"github.com/google/uuid"
)

// MappingEntry is one rule telling the installer where to find ROMs for an
// emulator profile and platform, and where to install them.
type MappingEntry struct {
	EmulatorProfileID string
	PlatformID        string
	SourcePath        string
	// DestinationPath may contain install.PlaceholderAppRoot. Use
	// DestinationPathResolved to get a usable path.
	DestinationPath string
	EmulatorID      uuid.UUID
	Enabled         bool
	GamesUseFolders bool
}

// NewMappingEntry returns an entry with the same defaults a loaded entry
// gets when fields are missing.
func NewMappingEntry() MappingEntry {
	return MappingEntry{Enabled: true}
}

// DestinationPathResolved expands the destination against the current
// install root. It is never persisted.
func (m *MappingEntry) DestinationPathResolved(mode install.Mode) string {
	return install.ResolveWith(m.DestinationPath, mode)
}

// Description is a short multi-line summary of the emulator, profile and
// platform this entry targets.
func (m *MappingEntry) Description(cat catalog.Catalog) string {
	return Describe(m, cat)
}
