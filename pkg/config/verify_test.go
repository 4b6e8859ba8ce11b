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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() MappingEntry {
	return MappingEntry{
		Enabled:           true,
		EmulatorID:        testEmulatorID,
		EmulatorProfileID: "snes9x",
		PlatformID:        "snes",
		SourcePath:        "/roms/snes",
		DestinationPath:   "{AppRoot}/snes",
	}
}

func TestVerify_ValidSettings(t *testing.T) {
	t.Parallel()

	other := validEntry()
	other.SourcePath = "/roms/snes2"

	s, _ := seededStore(t, validEntry(), other)
	ok, errs := s.Verify(testCatalog())
	assert.True(t, ok)
	assert.NotNil(t, errs)
	assert.Empty(t, errs)
}

func TestVerify_EmptySettings(t *testing.T) {
	t.Parallel()

	s, _ := seededStore(t)
	ok, errs := s.Verify(testCatalog())
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestVerify_Checks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mutate   func(m *MappingEntry)
		name     string
		expected []string
	}{
		{
			name:     "missing source path",
			mutate:   func(m *MappingEntry) { m.SourcePath = "" },
			expected: []string{"mapping 1: source path is required"},
		},
		{
			name:     "missing destination path",
			mutate:   func(m *MappingEntry) { m.DestinationPath = "" },
			expected: []string{"mapping 1: destination path is required"},
		},
		{
			name: "unknown emulator also fails profile",
			mutate: func(m *MappingEntry) {
				m.EmulatorID = uuid.MustParse("11111111-2222-4333-8444-555555555555")
			},
			expected: []string{
				`mapping 1: emulator "11111111-2222-4333-8444-555555555555" not found`,
				`mapping 1: profile "snes9x" not found`,
			},
		},
		{
			name:     "unknown profile",
			mutate:   func(m *MappingEntry) { m.EmulatorProfileID = "missing" },
			expected: []string{`mapping 1: profile "missing" not found`},
		},
		{
			name:     "unknown platform",
			mutate:   func(m *MappingEntry) { m.PlatformID = "n64" },
			expected: []string{`mapping 1: platform "n64" not found`},
		},
		{
			name: "empty identifiers are allowed",
			mutate: func(m *MappingEntry) {
				m.EmulatorID = uuid.Nil
				m.EmulatorProfileID = ""
				m.PlatformID = ""
			},
			expected: []string{},
		},
		{
			name: "profile without emulator",
			mutate: func(m *MappingEntry) {
				m.EmulatorID = uuid.Nil
			},
			expected: []string{`mapping 1: profile "snes9x" not found`},
		},
		{
			name: "several problems in field order",
			mutate: func(m *MappingEntry) {
				m.SourcePath = ""
				m.DestinationPath = ""
				m.PlatformID = "n64"
			},
			expected: []string{
				"mapping 1: source path is required",
				"mapping 1: destination path is required",
				`mapping 1: platform "n64" not found`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := validEntry()
			tt.mutate(&m)

			errs := VerifyMappings([]MappingEntry{m}, testCatalog())
			assert.Equal(t, tt.expected, errs)
		})
	}
}

func TestVerify_DuplicateEnabledPairs(t *testing.T) {
	t.Parallel()

	a := validEntry()
	b := validEntry()
	b.GamesUseFolders = true
	c := validEntry()

	s, _ := seededStore(t, a, b, c)
	ok, errs := s.Verify(testCatalog())
	assert.False(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t,
		`mapping 2: duplicate of mapping 1 (source "/roms/snes", destination "{AppRoot}/snes")`,
		errs[0])
	assert.Contains(t, errs[1], "mapping 3: duplicate of mapping 1")
}

func TestVerify_DisabledDuplicatesAreIgnored(t *testing.T) {
	t.Parallel()

	a := validEntry()
	b := validEntry()
	b.Enabled = false

	ok, errs := seededStoreVerify(t, a, b)
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestVerify_NilCatalogSkipsLookups(t *testing.T) {
	t.Parallel()

	m := validEntry()
	m.PlatformID = "anything"
	m.EmulatorProfileID = "anything"

	errs := VerifyMappings([]MappingEntry{m}, nil)
	assert.Empty(t, errs)
}

func TestVerify_DoesNotCommitOrCancel(t *testing.T) {
	t.Parallel()

	s, p := seededStore(t, validEntry())
	s.BeginEdit()
	bad := validEntry()
	bad.SourcePath = ""
	s.AddMapping(bad)

	ok, _ := s.Verify(testCatalog())
	assert.False(t, ok)
	assert.True(t, s.Editing())
	assert.Len(t, s.Mappings(), 2)
	assert.Equal(t, 0, p.saves)
}

func seededStoreVerify(t *testing.T, ms ...MappingEntry) (bool, []string) {
	t.Helper()
	s, _ := seededStore(t, ms...)
	return s.Verify(testCatalog())
}
