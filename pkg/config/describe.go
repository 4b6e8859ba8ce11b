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
	"strings"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/catalog"
)

// UnknownName is shown in place of a name that is not in the catalog.
const UnknownName = "<Unknown>"

// Describe renders the Emulator, Profile and Platform names of a mapping,
// one per line in that order. Identifiers missing from the catalog are
// shown as UnknownName.
func Describe(m *MappingEntry, cat catalog.Catalog) string {
	emulatorName := UnknownName
	profileName := UnknownName
	platformName := UnknownName

	if emu, ok := catalog.FindEmulator(cat, m.EmulatorID); ok {
		emulatorName = emu.Name
		if p, ok := catalog.FindProfile(cat, emu.ID, m.EmulatorProfileID); ok {
			profileName = p.Name
		}
	}

	if p, ok := catalog.FindPlatform(cat, m.PlatformID); ok {
		platformName = p.Name
	}

	var sb strings.Builder
	sb.WriteString("Emulator: ")
	sb.WriteString(emulatorName)
	sb.WriteString("\n")
	sb.WriteString("Profile: ")
	sb.WriteString(profileName)
	sb.WriteString("\n")
	sb.WriteString("Platform: ")
	sb.WriteString(platformName)
	sb.WriteString("\n")
	return sb.String()
}
