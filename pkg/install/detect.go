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

package install

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// AppEnv overrides the executable path used to find the install root.
	AppEnv = "EMULIBRARY_APP"
	// UserDir is the directory which, when present next to the binary,
	// marks a portable install.
	UserDir = "user"
)

var (
	detected   Static
	detectOnce sync.Once
)

// Detect inspects the running executable and reports the install mode. The
// result is cached for the life of the process.
func Detect() Mode {
	detectOnce.Do(func() {
		exe := os.Getenv(AppEnv)
		if exe == "" {
			var err error
			exe, err = os.Executable()
			if err != nil {
				log.Warn().Err(err).Msg("failed to locate executable, assuming fixed install")
				return
			}
		}
		detected = detect(afero.NewOsFs(), exe)
		log.Debug().
			Bool("portable", detected.Portable).
			Str("root", detected.Root).
			Msg("detected install mode")
	})
	return detected
}

// UserDirPath returns the portable user directory for a mode, and false if
// the mode is not portable.
func UserDirPath(mode Mode) (string, bool) {
	if mode == nil || !mode.IsPortable() {
		return "", false
	}
	return filepath.Join(mode.AppRootPath(), UserDir), true
}

func detect(fs afero.Fs, exePath string) Static {
	root := filepath.Dir(exePath)
	info, err := fs.Stat(filepath.Join(root, UserDir))
	if err != nil || !info.IsDir() {
		return Static{Root: root}
	}
	return Static{Root: root, Portable: true}
}
