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

// Package install resolves stored destination paths against the current
// installation root. A portable install can be moved between runs, so paths
// inside it are stored with the AppRoot placeholder and expanded on use.
package install

import (
	"path/filepath"
	"strings"
)

// PlaceholderAppRoot stands in for the application root directory inside a
// stored destination path.
const PlaceholderAppRoot = "{AppRoot}"

// Mode reports how the application is installed.
type Mode interface {
	// IsPortable is true when the application root may move between runs.
	IsPortable() bool
	// AppRootPath is the current application root directory.
	AppRootPath() string
}

// Resolve expands every AppRoot placeholder in destinationPath to appRoot
// when running as a portable install. Any other input is returned as is.
func Resolve(destinationPath string, portable bool, appRoot string) string {
	if !portable || !strings.Contains(destinationPath, PlaceholderAppRoot) {
		return destinationPath
	}
	return strings.ReplaceAll(destinationPath, PlaceholderAppRoot, appRoot)
}

// ResolveWith is Resolve using the flags of an install mode. A nil mode is
// treated as a fixed install.
func ResolveWith(destinationPath string, mode Mode) string {
	if mode == nil {
		return destinationPath
	}
	return Resolve(destinationPath, mode.IsPortable(), mode.AppRootPath())
}

// Tokenize is the reverse of Resolve: for a portable install, a path inside
// appRoot has its root prefix swapped for the AppRoot placeholder so it keeps
// working after the install is moved. Paths outside appRoot are unchanged.
func Tokenize(path string, portable bool, appRoot string) string {
	if !portable || appRoot == "" || path == "" {
		return path
	}
	if strings.Contains(path, PlaceholderAppRoot) {
		return path
	}

	cleanRoot := filepath.Clean(appRoot)
	cleanPath := filepath.Clean(path)
	if cleanPath == cleanRoot {
		return PlaceholderAppRoot
	}

	prefix := cleanRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(cleanPath, prefix) {
		return path
	}

	return PlaceholderAppRoot + string(filepath.Separator) + strings.TrimPrefix(cleanPath, prefix)
}

// Static is a fixed install mode, used by hosts that already know their
// layout and by tests.
type Static struct {
	Root     string
	Portable bool
}

func (s Static) IsPortable() bool {
	return s.Portable
}

func (s Static) AppRootPath() string {
	return s.Root
}
