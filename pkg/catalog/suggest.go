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
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// minNameSimilarity is the Jaro-Winkler score a name must reach to be
// offered as a suggestion.
const minNameSimilarity = 0.8

// EmulatorByName finds an emulator by display name, ignoring case.
func EmulatorByName(c Catalog, name string) (Emulator, bool) {
	if c == nil || name == "" {
		return Emulator{}, false
	}
	for _, e := range c.Emulators() {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Emulator{}, false
}

// SuggestEmulator returns the emulator whose name is closest to name, for
// "did you mean" hints after a failed lookup.
func SuggestEmulator(c Catalog, name string) (Emulator, bool) {
	if c == nil || name == "" {
		return Emulator{}, false
	}

	query := strings.ToLower(name)
	var best Emulator
	var bestScore float32
	for _, e := range c.Emulators() {
		score := edlib.JaroWinklerSimilarity(query, strings.ToLower(e.Name))
		if score > bestScore {
			best, bestScore = e, score
		}
	}

	if bestScore < minNameSimilarity {
		return Emulator{}, false
	}
	log.Debug().
		Str("query", name).
		Str("candidate", best.Name).
		Float32("similarity", bestScore).
		Msg("emulator name suggestion")
	return best, true
}
