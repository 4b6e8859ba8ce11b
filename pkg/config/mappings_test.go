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
	"testing"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/install"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testCatalog() *catalog.Static {
	return catalog.NewStatic(
		[]catalog.Emulator{
			{
				ID:   testEmulatorID,
				Name: "RetroArch",
				Profiles: []catalog.Profile{
					{ID: "snes9x", Name: "Snes9x"},
					{ID: "bsnes", Name: "bsnes"},
				},
			},
		},
		[]catalog.Platform{
			{ID: "snes", Name: "Nintendo SNES"},
			{ID: "nes", Name: "Nintendo NES"},
		},
	)
}

func TestNewMappingEntry_EnabledByDefault(t *testing.T) {
	t.Parallel()

	assert.True(t, NewMappingEntry().Enabled)
}

func TestDestinationPathResolved(t *testing.T) {
	t.Parallel()

	m := MappingEntry{
		SourcePath:      "/roms/snes",
		DestinationPath: "{AppRoot}/snes",
		GamesUseFolders: true,
	}

	assert.Equal(t, "/opt/app/snes",
		m.DestinationPathResolved(install.Static{Root: "/opt/app", Portable: true}))
	assert.Equal(t, "{AppRoot}/snes",
		m.DestinationPathResolved(install.Static{Root: "/opt/app"}))
	assert.Equal(t, "{AppRoot}/snes", m.DestinationPathResolved(nil))

	// resolving never touches the stored value
	assert.Equal(t, "{AppRoot}/snes", m.DestinationPath)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat      catalog.Catalog
		name     string
		expected string
		entry    MappingEntry
	}{
		{
			name: "all resolved",
			cat:  testCatalog(),
			entry: MappingEntry{
				EmulatorID:        testEmulatorID,
				EmulatorProfileID: "snes9x",
				PlatformID:        "snes",
			},
			expected: "Emulator: RetroArch\nProfile: Snes9x\nPlatform: Nintendo SNES\n",
		},
		{
			name: "unknown profile",
			cat:  testCatalog(),
			entry: MappingEntry{
				EmulatorID:        testEmulatorID,
				EmulatorProfileID: "missing",
				PlatformID:        "nes",
			},
			expected: "Emulator: RetroArch\nProfile: <Unknown>\nPlatform: Nintendo NES\n",
		},
		{
			name: "unknown emulator hides profile",
			cat:  testCatalog(),
			entry: MappingEntry{
				EmulatorID:        uuid.MustParse("11111111-2222-4333-8444-555555555555"),
				EmulatorProfileID: "snes9x",
				PlatformID:        "snes",
			},
			expected: "Emulator: <Unknown>\nProfile: <Unknown>\nPlatform: Nintendo SNES\n",
		},
		{
			name:     "empty entry",
			cat:      testCatalog(),
			entry:    MappingEntry{},
			expected: "Emulator: <Unknown>\nProfile: <Unknown>\nPlatform: <Unknown>\n",
		},
		{
			name: "nil catalog",
			cat:  nil,
			entry: MappingEntry{
				EmulatorID:        testEmulatorID,
				EmulatorProfileID: "snes9x",
				PlatformID:        "snes",
			},
			expected: "Emulator: <Unknown>\nProfile: <Unknown>\nPlatform: <Unknown>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, tt.entry.Description(tt.cat))
			})
		})
	}
}
