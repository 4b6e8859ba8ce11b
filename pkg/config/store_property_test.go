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
	"reflect"
	"testing"

	"github.com/google/uuid"
	"pgregory.net/rapid"
)

func genEntry(t *rapid.T, label string) MappingEntry {
	var id uuid.UUID
	if rapid.Bool().Draw(t, label+"HasEmulator") {
		copy(id[:], rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, label+"Emulator"))
	}
	return MappingEntry{
		Enabled:           rapid.Bool().Draw(t, label+"Enabled"),
		EmulatorID:        id,
		EmulatorProfileID: rapid.StringMatching(`[a-z0-9_]{0,8}`).Draw(t, label+"Profile"),
		PlatformID:        rapid.StringMatching(`[a-z0-9_]{0,8}`).Draw(t, label+"Platform"),
		SourcePath:        rapid.StringMatching(`(/[a-zA-Z0-9 ._-]{1,8}){0,3}`).Draw(t, label+"Source"),
		DestinationPath:   rapid.StringMatching(`(\{AppRoot\})?(/[a-zA-Z0-9 ._-]{1,8}){0,3}`).Draw(t, label+"Dest"),
		GamesUseFolders:   rapid.Bool().Draw(t, label+"Folders"),
	}
}

func genEntries(t *rapid.T) []MappingEntry {
	n := rapid.IntRange(0, 8).Draw(t, "count")
	out := make([]MappingEntry, n)
	for i := range out {
		out[i] = genEntry(t, "entry")
	}
	return out
}

// TestPropertyCancelRevertsMutations verifies any sequence of mutations made
// after BeginEdit is undone by CancelEdit.
func TestPropertyCancelRevertsMutations(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		p := &memPersister{saved: &Values{ConfigSchema: SchemaVersion, Mappings: genEntries(t)}}
		s := NewStore(p, BaseDefaults)
		before := s.Values()

		s.BeginEdit()
		ops := rapid.IntRange(0, 12).Draw(t, "ops")
		for range ops {
			n := len(s.Mappings())
			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0:
				s.AddMapping(genEntry(t, "add"))
			case 1:
				if n > 0 {
					_ = s.RemoveMapping(rapid.IntRange(0, n-1).Draw(t, "remove"))
				}
			case 2:
				if n > 0 {
					_ = s.UpdateMapping(rapid.IntRange(0, n-1).Draw(t, "update"), genEntry(t, "upd"))
				}
			case 3:
				if n > 0 {
					_ = s.MoveMapping(
						rapid.IntRange(0, n-1).Draw(t, "from"),
						rapid.IntRange(0, n-1).Draw(t, "to"),
					)
				}
			case 4:
				_ = s.InsertMapping(rapid.IntRange(0, n).Draw(t, "insert"), genEntry(t, "ins"))
			case 5:
				s.SetErrorReporting(rapid.Bool().Draw(t, "reporting"))
			}
		}
		s.CancelEdit()

		if after := s.Values(); !reflect.DeepEqual(before, after) {
			t.Fatalf("cancel did not revert: before %+v, after %+v", before, after)
		}
	})
}

// TestPropertyTOMLRoundTrip verifies encoding then decoding keeps every
// mapping, in order.
func TestPropertyTOMLRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		in := Values{
			ConfigSchema:   SchemaVersion,
			DebugLogging:   rapid.Bool().Draw(t, "debug"),
			ErrorReporting: rapid.Bool().Draw(t, "reporting"),
			Mappings:       genEntries(t),
		}

		data, err := EncodeTOML(&in)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		out, err := DecodeTOML(data, &BaseDefaults)
		if err != nil {
			t.Fatalf("decode: %v\n%s", err, data)
		}
		if !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch:\n%+v\n%+v", in, out)
		}
	})
}
