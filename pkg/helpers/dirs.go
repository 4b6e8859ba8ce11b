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

package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/install"
	"github.com/adrg/xdg"
)

// Dirs are the directories the app reads and writes.
type Dirs struct {
	Config string
	Data   string
	Log    string
}

// ResolveDirs picks the app directories for an install mode. A portable
// install keeps everything under its user directory, otherwise the XDG
// base directories are used.
func ResolveDirs(mode install.Mode) Dirs {
	if v, ok := install.UserDirPath(mode); ok {
		return Dirs{
			Config: v,
			Data:   v,
			Log:    filepath.Join(v, config.LogsDir),
		}
	}
	return Dirs{
		Config: filepath.Join(xdg.ConfigHome, config.AppName),
		Data:   filepath.Join(xdg.DataHome, config.AppName),
		Log:    filepath.Join(xdg.DataHome, config.AppName, config.LogsDir),
	}
}

func ConfigDir(mode install.Mode) string {
	return ResolveDirs(mode).Config
}

func DataDir(mode install.Mode) string {
	return ResolveDirs(mode).Data
}

// EnsureDirectories creates every directory in d.
func EnsureDirectories(d Dirs) error {
	if err := os.MkdirAll(d.Config, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(d.Data, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(d.Log, 0o750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}
