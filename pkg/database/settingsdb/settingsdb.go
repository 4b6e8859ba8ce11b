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

// Package settingsdb persists mapping settings in a SQLite database, for
// hosts which already keep their state in SQLite.
package settingsdb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/database"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var ErrNullSQL = errors.New("SettingsDB is not connected")

const sqliteConnParams = "?_journal_mode=WAL&_synchronous=FULL&_busy_timeout=5000"

// SettingsDB implements config.Persister on top of SQLite.
type SettingsDB struct {
	sql      *sql.DB
	ctx      context.Context
	defaults config.Values
}

// Open opens or creates the database at dbPath and applies migrations.
//
//nolint:gocritic // defaults copied for immutability
func Open(ctx context.Context, dbPath string, defaults config.Values) (*SettingsDB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create directory for database: %w", err)
	}

	sqlInstance, err := sql.Open("sqlite3", dbPath+sqliteConnParams)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := FromSQL(ctx, sqlInstance, defaults)
	if err != nil {
		_ = sqlInstance.Close()
		return nil, err
	}
	return db, nil
}

// FromSQL wraps an existing connection and applies migrations. Tests use
// it with an in-memory database.
//
//nolint:gocritic // defaults copied for immutability
func FromSQL(ctx context.Context, sqlDB *sql.DB, defaults config.Values) (*SettingsDB, error) {
	db := newWithSQL(ctx, sqlDB, defaults)
	if err := db.MigrateUp(); err != nil {
		return nil, err
	}
	return db, nil
}

//nolint:gocritic // defaults copied for immutability
func newWithSQL(ctx context.Context, sqlDB *sql.DB, defaults config.Values) *SettingsDB {
	return &SettingsDB{
		sql:      sqlDB,
		ctx:      ctx,
		defaults: defaults.Clone(),
	}
}

func (db *SettingsDB) MigrateUp() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	if err := database.MigrateUp(db.sql, migrationFiles, "migrations"); err != nil {
		return fmt.Errorf("failed to run settings database migrations: %w", err)
	}
	return nil
}

func (db *SettingsDB) Load() (*config.Values, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlLoad(db.ctx, db.sql, &db.defaults)
}

func (db *SettingsDB) Save(v *config.Values) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlSave(db.ctx, db.sql, v)
}

func (db *SettingsDB) Close() error {
	if db.sql == nil {
		return nil
	}
	if err := db.sql.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
