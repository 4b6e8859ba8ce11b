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

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

var ErrVerifyFailed = errors.New("mappings failed verification")

// VerifyError carries the problems found by a failed verification.
type VerifyError struct {
	Problems []string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("%s: %d problem(s)", ErrVerifyFailed, len(e.Problems))
}

func (*VerifyError) Unwrap() error {
	return ErrVerifyFailed
}

// List prints every mapping with its enabled state and resolved paths.
func List(w io.Writer, app *App) error {
	ms := app.Store.Mappings()
	if len(ms) == 0 {
		_, _ = fmt.Fprintln(w, "No mappings")
		return nil
	}

	for i := range ms {
		m := &ms[i]
		state := " "
		if m.Enabled {
			state = "x"
		}
		_, _ = fmt.Fprintf(w, "%d. [%s] %s -> %s\n",
			i+1, state, m.SourcePath, m.DestinationPathResolved(app.Mode))
		if p, ok := catalog.FindPlatform(app.Catalog, m.PlatformID); ok {
			_, _ = fmt.Fprintf(w, "   %s\n", p.Name)
		}
	}
	return nil
}

type mappingRow struct {
	Index           int    `csv:"index"`
	Enabled         bool   `csv:"enabled"`
	Emulator        string `csv:"emulator"`
	Profile         string `csv:"profile"`
	Platform        string `csv:"platform"`
	Source          string `csv:"source"`
	Destination     string `csv:"destination"`
	Resolved        string `csv:"resolved"`
	GamesUseFolders bool   `csv:"games_use_folders"`
}

// ListCSV prints every mapping as a CSV row. Catalog names are used where
// known, raw IDs otherwise.
func ListCSV(w io.Writer, app *App) error {
	ms := app.Store.Mappings()
	rows := make([]*mappingRow, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		row := &mappingRow{
			Index:           i + 1,
			Enabled:         m.Enabled,
			Profile:         m.EmulatorProfileID,
			Platform:        m.PlatformID,
			Source:          m.SourcePath,
			Destination:     m.DestinationPath,
			Resolved:        m.DestinationPathResolved(app.Mode),
			GamesUseFolders: m.GamesUseFolders,
		}
		if e, ok := catalog.FindEmulator(app.Catalog, m.EmulatorID); ok {
			row.Emulator = e.Name
		} else if m.EmulatorID != uuid.Nil {
			row.Emulator = m.EmulatorID.String()
		}
		if p, ok := catalog.FindProfile(app.Catalog, m.EmulatorID, m.EmulatorProfileID); ok {
			row.Profile = p.Name
		}
		if p, ok := catalog.FindPlatform(app.Catalog, m.PlatformID); ok {
			row.Platform = p.Name
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// Verify prints the result of checking every mapping. It returns a
// VerifyError if any problem was found.
func Verify(w io.Writer, app *App) error {
	ok, problems := app.Store.Verify(app.Catalog)
	if ok {
		_, _ = fmt.Fprintf(w, "All %d mappings are valid\n", len(app.Store.Mappings()))
		return nil
	}
	for _, p := range problems {
		_, _ = fmt.Fprintln(w, p)
	}
	return &VerifyError{Problems: problems}
}

// Describe prints the description of mapping i.
func Describe(w io.Writer, app *App, i int) error {
	m, err := app.Store.Mapping(i)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(w, config.Describe(&m, app.Catalog))
	return nil
}

// Resolve prints the destination path of mapping i expanded for the current
// install.
func Resolve(w io.Writer, app *App, i int) error {
	m, err := app.Store.Mapping(i)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, m.DestinationPathResolved(app.Mode))
	return nil
}
