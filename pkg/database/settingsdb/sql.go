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

package settingsdb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	keyConfigSchema   = "config_schema"
	keyDebugLogging   = "debug_logging"
	keyErrorReporting = "error_reporting"
)

func sqlLoadSettings(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `select Key, Value from Settings;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close sql rows")
		}
	}()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", err)
		}
		settings[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings rows: %w", err)
	}
	return settings, nil
}

func sqlLoadMappings(ctx context.Context, db *sql.DB) ([]config.MappingEntry, error) {
	rows, err := db.QueryContext(ctx, `
		select
		Enabled, EmulatorID, EmulatorProfileID, PlatformID,
		SourcePath, DestinationPath, GamesUseFolders
		from Mappings
		order by Position asc;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close sql rows")
		}
	}()

	list := make([]config.MappingEntry, 0)
	for rows.Next() {
		m := config.NewMappingEntry()
		var enabled sql.NullBool
		var emulatorID string
		scanErr := rows.Scan(
			&enabled,
			&emulatorID,
			&m.EmulatorProfileID,
			&m.PlatformID,
			&m.SourcePath,
			&m.DestinationPath,
			&m.GamesUseFolders,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan mapping row: %w", scanErr)
		}
		if enabled.Valid {
			m.Enabled = enabled.Bool
		}
		if emulatorID != "" {
			id, err := uuid.Parse(emulatorID)
			if err != nil {
				log.Warn().Msgf("invalid emulator id in settings database: %s", emulatorID)
			} else {
				m.EmulatorID = id
			}
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mapping rows: %w", err)
	}
	return list, nil
}

func parseBool(settings map[string]string, key string, def bool) bool {
	s, ok := settings[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Warn().Msgf("invalid value for %s in settings database: %s", key, s)
		return def
	}
	return b
}

func sqlLoad(ctx context.Context, db *sql.DB, defaults *config.Values) (*config.Values, error) {
	settings, err := sqlLoadSettings(ctx, db)
	if err != nil {
		return nil, err
	}
	// Settings always has a schema row once anything was saved.
	schema, ok := settings[keyConfigSchema]
	if !ok {
		return nil, config.ErrNotFound
	}
	if schema != strconv.Itoa(config.SchemaVersion) {
		log.Error().Msgf(
			"schema version mismatch: got %s, expecting %d",
			schema,
			config.SchemaVersion,
		)
		return nil, config.ErrSchemaMismatch
	}

	mappings, err := sqlLoadMappings(ctx, db)
	if err != nil {
		return nil, err
	}

	return &config.Values{
		ConfigSchema:   config.SchemaVersion,
		DebugLogging:   parseBool(settings, keyDebugLogging, defaults.DebugLogging),
		ErrorReporting: parseBool(settings, keyErrorReporting, defaults.ErrorReporting),
		Mappings:       mappings,
	}, nil
}

func sqlSave(ctx context.Context, db *sql.DB, v *config.Values) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// no-op after commit
		_ = tx.Rollback()
	}()

	//goland:noinspection SqlWithoutWhere
	if _, err := tx.ExecContext(ctx, `delete from Mappings;`); err != nil {
		return fmt.Errorf("failed to clear mappings: %w", err)
	}
	//goland:noinspection SqlWithoutWhere
	if _, err := tx.ExecContext(ctx, `delete from Settings;`); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	settingsStmt, err := tx.PrepareContext(ctx, `insert into Settings(Key, Value) values (?, ?);`)
	if err != nil {
		return fmt.Errorf("failed to prepare settings insert statement: %w", err)
	}
	defer func() {
		if closeErr := settingsStmt.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close sql statement")
		}
	}()

	settings := [][2]string{
		{keyConfigSchema, strconv.Itoa(config.SchemaVersion)},
		{keyDebugLogging, strconv.FormatBool(v.DebugLogging)},
		{keyErrorReporting, strconv.FormatBool(v.ErrorReporting)},
	}
	for _, kv := range settings {
		if _, err := settingsStmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to execute settings insert: %w", err)
		}
	}

	mappingStmt, err := tx.PrepareContext(ctx, `
		insert into Mappings(
			Position, Enabled, EmulatorID, EmulatorProfileID, PlatformID,
			SourcePath, DestinationPath, GamesUseFolders
		) values (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare mapping insert statement: %w", err)
	}
	defer func() {
		if closeErr := mappingStmt.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close sql statement")
		}
	}()

	for i, m := range v.Mappings {
		emulatorID := ""
		if m.EmulatorID != uuid.Nil {
			emulatorID = m.EmulatorID.String()
		}
		_, err := mappingStmt.ExecContext(ctx,
			i,
			m.Enabled,
			emulatorID,
			m.EmulatorProfileID,
			m.PlatformID,
			m.SourcePath,
			m.DestinationPath,
			m.GamesUseFolders,
		)
		if err != nil {
			return fmt.Errorf("failed to execute mapping insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
