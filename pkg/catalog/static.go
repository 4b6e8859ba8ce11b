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
	"slices"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Static is an in-memory catalog. It is safe to share between goroutines
// once built.
type Static struct {
	emulators []Emulator
	platforms []Platform
}

// NewStatic builds a catalog from the given emulators and platforms. The
// inputs are copied and sorted by display name.
func NewStatic(emulators []Emulator, platforms []Platform) *Static {
	s := &Static{
		emulators: cloneEmulators(emulators),
		platforms: slices.Clone(platforms),
	}

	col := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(s.emulators, func(a, b Emulator) int {
		return col.CompareString(a.Name, b.Name)
	})
	for i := range s.emulators {
		slices.SortStableFunc(s.emulators[i].Profiles, func(a, b Profile) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
	slices.SortStableFunc(s.platforms, func(a, b Platform) int {
		return col.CompareString(a.Name, b.Name)
	})

	return s
}

func (s *Static) Emulators() []Emulator {
	return cloneEmulators(s.emulators)
}

func (s *Static) Profiles(emulatorID uuid.UUID) []Profile {
	for _, e := range s.emulators {
		if e.ID == emulatorID {
			return slices.Clone(e.Profiles)
		}
	}
	return nil
}

func (s *Static) Platforms() []Platform {
	return slices.Clone(s.platforms)
}

func cloneEmulators(in []Emulator) []Emulator {
	if in == nil {
		return nil
	}
	out := make([]Emulator, len(in))
	for i, e := range in {
		out[i] = e
		out[i].Profiles = slices.Clone(e.Profiles)
	}
	return out
}
