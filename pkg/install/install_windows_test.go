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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_WindowsPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		root     string
		expected string
	}{
		{
			name:     "inside root",
			path:     `D:\EmuLibrary\games\snes`,
			root:     `D:\EmuLibrary`,
			expected: `{AppRoot}\games\snes`,
		},
		{
			name:     "root with trailing separator",
			path:     `D:\EmuLibrary\games`,
			root:     `D:\EmuLibrary\`,
			expected: `{AppRoot}\games`,
		},
		{
			name:     "forward slashes are cleaned",
			path:     `D:/EmuLibrary/games`,
			root:     `D:\EmuLibrary`,
			expected: `{AppRoot}\games`,
		},
		{
			name:     "sibling with shared prefix",
			path:     `D:\EmuLibrary2\games`,
			root:     `D:\EmuLibrary`,
			expected: `D:\EmuLibrary2\games`,
		},
		{
			name:     "other drive",
			path:     `E:\games`,
			root:     `D:\EmuLibrary`,
			expected: `E:\games`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Tokenize(tt.path, true, tt.root))
		})
	}
}

func TestResolve_WindowsRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `D:\EmuLibrary\games\snes`,
		Resolve(`{AppRoot}\games\snes`, true, `D:\EmuLibrary`))
}
