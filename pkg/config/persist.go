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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Persister loads and saves the settings blob for a Store.
type Persister interface {
	// Load returns the last saved settings, or ErrNotFound if nothing has
	// been saved yet.
	Load() (*Values, error)
	Save(v *Values) error
}

// FilePersister keeps settings in a TOML file.
type FilePersister struct {
	fs       afero.Fs
	path     string
	defaults Values
}

//nolint:gocritic // defaults copied for immutability
func NewFilePersister(fs afero.Fs, path string, defaults Values) *FilePersister {
	return &FilePersister{
		fs:       fs,
		path:     path,
		defaults: defaults.Clone(),
	}
}

// SettingsPath returns the settings file location inside configDir, unless
// overridden by the CfgEnv environment variable.
func SettingsPath(configDir string) string {
	if p := os.Getenv(CfgEnv); p != "" {
		log.Debug().Msgf("env config path: %s", p)
		return p
	}
	return filepath.Join(configDir, CfgFile)
}

func (p *FilePersister) Path() string {
	return p.path
}

func (p *FilePersister) Load() (*Values, error) {
	if p.path == "" {
		return nil, errors.New("config path not set")
	}

	data, err := afero.ReadFile(p.fs, p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	vals, err := DecodeTOML(data, &p.defaults)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("loaded %d mappings from %s", len(vals.Mappings), p.path)
	return &vals, nil
}

// Save writes to a temporary file first so a failed write never truncates
// the previous settings.
func (p *FilePersister) Save(v *Values) error {
	if p.path == "" {
		return errors.New("config path not set")
	}

	data, err := EncodeTOML(v)
	if err != nil {
		return err
	}

	if err := p.fs.MkdirAll(filepath.Dir(p.path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpPath := p.path + ".tmp"
	if err := afero.WriteFile(p.fs, tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := p.fs.Rename(tmpPath, p.path); err != nil {
		_ = p.fs.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}
