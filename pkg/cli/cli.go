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
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
)

const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

var ErrNoCommand = errors.New("no command given")

type Flags struct {
	fs *flag.FlagSet

	List     *bool
	CSV      *bool
	Add      *bool
	Verify   *bool
	Version  *bool
	Folders  *bool
	Disabled *bool
	Debug    *bool
	Reports  *bool

	Remove   *int
	Enable   *int
	Disable  *int
	Describe *int
	Resolve  *int

	Move         *string
	Emulator     *string
	Profile      *string
	Platform     *string
	Source       *string
	Dest         *string
	Catalog      *string
	Backend      *string
	PortableRoot *string
}

// SetupFlags defines all CLI flags on fs. Mapping numbers are 1-based, the
// same as in verify output.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs: fs,
		List: fs.Bool(
			"list",
			false,
			"list all mappings",
		),
		CSV: fs.Bool(
			"csv",
			false,
			"with -list, print mappings as CSV",
		),
		Add: fs.Bool(
			"add",
			false,
			"add a mapping built from -emulator, -profile, -platform, -source, -dest",
		),
		Verify: fs.Bool(
			"verify",
			false,
			"check all mappings and print any problems",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Folders: fs.Bool(
			"folders",
			false,
			"with -add, install each game into its own folder",
		),
		Disabled: fs.Bool(
			"disabled",
			false,
			"with -add, add the mapping disabled",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"save the debug logging setting",
		),
		Reports: fs.Bool(
			"error-reporting",
			false,
			"save the error reporting setting",
		),
		Remove: fs.Int(
			"remove",
			0,
			"remove mapping N",
		),
		Enable: fs.Int(
			"enable",
			0,
			"enable mapping N",
		),
		Disable: fs.Int(
			"disable",
			0,
			"disable mapping N",
		),
		Describe: fs.Int(
			"describe",
			0,
			"print the emulator, profile and platform of mapping N",
		),
		Resolve: fs.Int(
			"resolve",
			0,
			"print the resolved destination path of mapping N",
		),
		Move: fs.String(
			"move",
			"",
			"move a mapping, given as FROM:TO",
		),
		Emulator: fs.String(
			"emulator",
			"",
			"with -add, emulator ID or name",
		),
		Profile: fs.String(
			"profile",
			"",
			"with -add, emulator profile ID",
		),
		Platform: fs.String(
			"platform",
			"",
			"with -add, platform ID",
		),
		Source: fs.String(
			"source",
			"",
			"with -add, ROM source path",
		),
		Dest: fs.String(
			"dest",
			"",
			"with -add, install destination path",
		),
		Catalog: fs.String(
			"catalog",
			"",
			"catalog file of emulators and platforms (default: "+config.CatalogFile+" in config dir)",
		),
		Backend: fs.String(
			"backend",
			BackendTOML,
			"settings backend: toml, sqlite or bolt",
		),
		PortableRoot: fs.String(
			"portable-root",
			"",
			"treat this directory as the root of a portable install",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and handles flags which need no setup. It returns true if
// the program should exit.
func (f *Flags) Pre(args []string, w io.Writer) (bool, error) {
	if err := f.fs.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}

	switch *f.Backend {
	case BackendTOML, BackendSQLite, BackendBolt:
	default:
		return true, fmt.Errorf("unknown backend: %s (valid: toml, sqlite, bolt)", *f.Backend)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(w, "EmuLibrary v%s\n", config.AppVersion)
		return true, nil
	}
	return false, nil
}

// parseMove reads a 1-based FROM:TO pair into 0-based indexes.
func parseMove(s string) (from, to int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid move %q, expected FROM:TO", s)
	}
	from, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid move source %q: %w", a, err)
	}
	to, err = strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid move target %q: %w", b, err)
	}
	return from - 1, to - 1, nil
}

// Post runs the command selected by the flags against app.
func (f *Flags) Post(app *App, w io.Writer) error {
	switch {
	case *f.List && *f.CSV:
		return ListCSV(w, app)
	case *f.List:
		return List(w, app)
	case *f.Add:
		return f.add(app, w)
	case f.isFlagPassed("remove"):
		return app.Edit(func(s *config.Store) error {
			return s.RemoveMapping(*f.Remove - 1)
		})
	case f.isFlagPassed("move"):
		from, to, err := parseMove(*f.Move)
		if err != nil {
			return err
		}
		return app.Edit(func(s *config.Store) error {
			return s.MoveMapping(from, to)
		})
	case f.isFlagPassed("enable"):
		return app.Edit(setEnabled(*f.Enable-1, true))
	case f.isFlagPassed("disable"):
		return app.Edit(setEnabled(*f.Disable-1, false))
	case f.isFlagPassed("debug") || f.isFlagPassed("error-reporting"):
		return app.Edit(func(s *config.Store) error {
			if f.isFlagPassed("debug") {
				s.SetDebugLogging(*f.Debug)
			}
			if f.isFlagPassed("error-reporting") {
				s.SetErrorReporting(*f.Reports)
			}
			return nil
		})
	case *f.Verify:
		return Verify(w, app)
	case f.isFlagPassed("describe"):
		return Describe(w, app, *f.Describe-1)
	case f.isFlagPassed("resolve"):
		return Resolve(w, app, *f.Resolve-1)
	default:
		return ErrNoCommand
	}
}

func (f *Flags) add(app *App, w io.Writer) error {
	m, err := app.NewMapping(MappingArgs{
		Emulator: *f.Emulator,
		Profile:  *f.Profile,
		Platform: *f.Platform,
		Source:   *f.Source,
		Dest:     *f.Dest,
		Folders:  *f.Folders,
		Disabled: *f.Disabled,
	})
	if err != nil {
		return err
	}

	var n int
	err = app.Edit(func(s *config.Store) error {
		n = s.AddMapping(m)
		return nil
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Added mapping %d\n", n+1)
	return nil
}

func setEnabled(i int, enabled bool) func(*config.Store) error {
	return func(s *config.Store) error {
		m, err := s.Mapping(i)
		if err != nil {
			return err
		}
		m.Enabled = enabled
		return s.UpdateMapping(i, m)
	}
}
