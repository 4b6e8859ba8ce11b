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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-emulibrary/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/database/boltstore"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/database/settingsdb"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/install"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// App is everything a command needs.
type App struct {
	Store   *config.Store
	Catalog catalog.Catalog
	Mode    install.Mode
	closer  io.Closer
}

func NewApp(store *config.Store, cat catalog.Catalog, mode install.Mode) *App {
	return &App{
		Store:   store,
		Catalog: cat,
		Mode:    mode,
	}
}

// Setup creates directories, starts logging, opens the settings backend and
// loads the catalog.
func Setup(f *Flags, writers []io.Writer) (*App, error) {
	mode := resolveMode(*f.PortableRoot)
	dirs := helpers.ResolveDirs(mode)

	if err := helpers.EnsureDirectories(dirs); err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	if err := helpers.InitLogging(dirs.Log, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	fs := afero.NewOsFs()

	p, closer, err := OpenPersister(*f.Backend, fs, dirs)
	if err != nil {
		return nil, err
	}

	store := config.NewStore(p, config.BaseDefaults)

	cat, err := LoadCatalog(fs, *f.Catalog, dirs.Config)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	if err := telemetry.Init(telemetry.Options{
		Enabled:    store.ErrorReporting(),
		AppVersion: config.AppVersion,
		Backend:    *f.Backend,
		Portable:   mode.IsPortable(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	app := NewApp(store, cat, mode)
	app.closer = closer
	return app, nil
}

func resolveMode(portableRoot string) install.Mode {
	if portableRoot != "" {
		return install.Static{Root: portableRoot, Portable: true}
	}
	return install.Detect()
}

// OpenPersister opens the settings backend. The returned closer is nil for
// backends which hold nothing open.
func OpenPersister(backend string, fs afero.Fs, dirs helpers.Dirs) (config.Persister, io.Closer, error) {
	switch backend {
	case BackendTOML:
		path := config.SettingsPath(dirs.Config)
		log.Info().Msgf("using settings file: %s", path)
		return config.NewFilePersister(fs, path, config.BaseDefaults), nil, nil
	case BackendSQLite:
		path := filepath.Join(dirs.Data, config.SettingsDB)
		log.Info().Msgf("using settings database: %s", path)
		db, err := settingsdb.Open(context.Background(), path, config.BaseDefaults)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening settings database: %w", err)
		}
		return db, db, nil
	case BackendBolt:
		path := filepath.Join(dirs.Data, config.SettingsBolt)
		log.Info().Msgf("using settings bolt file: %s", path)
		db, err := boltstore.Open(path, config.BaseDefaults)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening settings bolt file: %w", err)
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

// LoadCatalog reads the catalog at path, or the default catalog file in
// configDir when path is empty. A missing default file gives a nil catalog,
// which skips emulator and platform checks.
func LoadCatalog(fs afero.Fs, path, configDir string) (catalog.Catalog, error) {
	if path == "" {
		path = filepath.Join(configDir, config.CatalogFile)
		if _, err := fs.Stat(path); errors.Is(err, os.ErrNotExist) {
			log.Debug().Msgf("no catalog file at %s", path)
			return nil, nil
		}
	}

	cat, err := catalog.LoadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	log.Debug().Msgf("catalog path: %s", path)
	return cat, nil
}

// Close releases the settings backend and flushes error reports.
func (a *App) Close() error {
	telemetry.Close()
	if a.closer == nil {
		return nil
	}
	if err := a.closer.Close(); err != nil {
		return fmt.Errorf("error closing settings backend: %w", err)
	}
	return nil
}

// Edit runs fn inside an edit session. The session is committed only if fn
// succeeds and every mapping still verifies, otherwise it is cancelled.
func (a *App) Edit(fn func(s *config.Store) error) error {
	s := a.Store
	s.BeginEdit()

	if err := fn(s); err != nil {
		s.CancelEdit()
		return err
	}

	if ok, problems := s.Verify(a.Catalog); !ok {
		s.CancelEdit()
		return &VerifyError{Problems: problems}
	}

	if err := s.EndEdit(); err != nil {
		s.CancelEdit()
		log.Error().Err(err).Msg("error saving settings")
		return err
	}
	return nil
}

// MappingArgs are the raw user inputs for a new mapping.
type MappingArgs struct {
	Emulator string
	Profile  string
	Platform string
	Source   string
	Dest     string
	Folders  bool
	Disabled bool
}

// NewMapping builds a mapping entry from user input. The emulator may be
// given as an ID or a catalog name, and a destination inside a portable
// install is stored relative to the install root.
func (a *App) NewMapping(args MappingArgs) (config.MappingEntry, error) {
	m := config.NewMappingEntry()

	id, err := a.lookupEmulator(args.Emulator)
	if err != nil {
		return m, err
	}

	m.EmulatorID = id
	m.EmulatorProfileID = args.Profile
	m.PlatformID = args.Platform
	m.SourcePath = args.Source
	m.GamesUseFolders = args.Folders
	m.Enabled = !args.Disabled

	m.DestinationPath = args.Dest
	if a.Mode != nil && args.Dest != "" {
		m.DestinationPath = install.Tokenize(args.Dest, a.Mode.IsPortable(), a.Mode.AppRootPath())
	}
	return m, nil
}

func (a *App) lookupEmulator(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	if id, err := uuid.Parse(s); err == nil {
		return id, nil
	}
	if e, ok := catalog.EmulatorByName(a.Catalog, s); ok {
		return e.ID, nil
	}
	if e, ok := catalog.SuggestEmulator(a.Catalog, s); ok {
		return uuid.Nil, fmt.Errorf("unknown emulator: %s (did you mean %q?)", s, e.Name)
	}
	return uuid.Nil, fmt.Errorf("unknown emulator: %s", s)
}
