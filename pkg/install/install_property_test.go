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
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

func genPath(t *rapid.T, label string) string {
	return rapid.StringMatching(`(\{AppRoot\})?(/[a-zA-Z0-9 ._-]{1,8}){0,4}(\{AppRoot\})?`).Draw(t, label)
}

func genRoot(t *rapid.T) string {
	return rapid.StringMatching(`(/[a-z0-9_-]{1,8}){1,4}`).Draw(t, "root")
}

// TestPropertyResolveIdempotent verifies resolving twice equals resolving once.
func TestPropertyResolveIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		p := genPath(t, "path")
		root := genRoot(t)
		portable := rapid.Bool().Draw(t, "portable")

		once := Resolve(p, portable, root)
		twice := Resolve(once, portable, root)
		if once != twice {
			t.Fatalf("not idempotent: %q -> %q -> %q", p, once, twice)
		}
	})
}

// TestPropertyResolveFixedIsIdentity verifies a fixed install never rewrites.
func TestPropertyResolveFixedIsIdentity(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.String().Draw(t, "path")
		root := rapid.String().Draw(t, "root")

		if got := Resolve(p, false, root); got != p {
			t.Fatalf("fixed install changed %q to %q", p, got)
		}
	})
}

// TestPropertyTokenizeRoundTrip verifies a tokenized path resolves back to
// the original location.
func TestPropertyTokenizeRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		root := genRoot(t)
		rel := rapid.StringMatching(`[a-z0-9]{1,8}(/[a-z0-9]{1,8}){0,3}`).Draw(t, "rel")
		p := filepath.Join(root, rel)

		tok := Tokenize(p, true, root)
		if got := Resolve(tok, true, root); got != p {
			t.Fatalf("round trip mismatch: %q -> %q -> %q", p, tok, got)
		}
	})
}
