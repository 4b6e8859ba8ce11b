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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersister_MissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	p := NewFilePersister(afero.NewMemMapFs(), "/cfg/settings.toml", BaseDefaults)
	_, err := p.Load()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFilePersister_SaveThenLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	p := NewFilePersister(fs, "/cfg/nested/settings.toml", BaseDefaults)

	in := Values{
		ConfigSchema: SchemaVersion,
		Mappings: []MappingEntry{
			{Enabled: true, EmulatorID: testEmulatorID, SourcePath: "/roms/snes", DestinationPath: "{AppRoot}/snes"},
			{Enabled: false, SourcePath: "/roms/nes", DestinationPath: "/games/nes"},
		},
	}
	require.NoError(t, p.Save(&in))

	exists, err := afero.Exists(fs, "/cfg/nested/settings.toml")
	require.NoError(t, err)
	assert.True(t, exists)

	tmpExists, err := afero.Exists(fs, "/cfg/nested/settings.toml.tmp")
	require.NoError(t, err)
	assert.False(t, tmpExists)

	out, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestFilePersister_LoadMalformed(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/settings.toml", []byte("[[[ bad"), 0o600))

	p := NewFilePersister(fs, "/settings.toml", BaseDefaults)
	_, err := p.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFilePersister_SaveReadOnlyFails(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	p := NewFilePersister(fs, "/cfg/settings.toml", BaseDefaults)

	err := p.Save(&Values{})
	require.Error(t, err)
}

func TestFilePersister_EmptyPath(t *testing.T) {
	t.Parallel()

	p := NewFilePersister(afero.NewMemMapFs(), "", BaseDefaults)
	_, err := p.Load()
	require.Error(t, err)
	require.Error(t, p.Save(&Values{}))
}

//nolint:paralleltest // modifies environment
func TestSettingsPath(t *testing.T) {
	t.Setenv(CfgEnv, "")
	assert.Equal(t, filepath.Join("/home/user/.config/emulibrary", CfgFile),
		SettingsPath("/home/user/.config/emulibrary"))

	override := filepath.Join(os.TempDir(), "custom.toml")
	t.Setenv(CfgEnv, override)
	assert.Equal(t, override, SettingsPath("/home/user/.config/emulibrary"))
}
