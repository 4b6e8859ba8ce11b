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

package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of an exported catalog:
//
//	[[emulators]]
//	id = "5f7e..."
//	name = "RetroArch"
//	[[emulators.profiles]]
//	id = "snes9x"
//	name = "Snes9x"
//
//	[[platforms]]
//	id = "nintendo_snes"
//	name = "Nintendo SNES"
//
// The same layout is accepted as YAML when the file ends in .yaml or .yml.
type File struct {
	Emulators []Emulator `toml:"emulators" yaml:"emulators"`
	Platforms []Platform `toml:"platforms" yaml:"platforms"`
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadFile reads a catalog export from fs.
func LoadFile(fs afero.Fs, path string) (*Static, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f File
	if isYAML(path) {
		err = yaml.Unmarshal(data, &f)
	} else {
		err = toml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	log.Info().Msgf("loaded catalog with %d emulators, %d platforms",
		len(f.Emulators), len(f.Platforms))

	return NewStatic(f.Emulators, f.Platforms), nil
}
