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

// Package boltstore persists mapping settings in a bbolt key/value file.
package boltstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketSettings = "settings"
	KeyValues      = "values"
)

var ErrClosed = errors.New("bolt store is closed")

// Store implements config.Persister with the whole settings blob stored
// as JSON under a single key.
type Store struct {
	bdb      *bolt.DB
	path     string
	defaults config.Values
}

// Exists reports whether a bolt settings file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Open opens or creates the bolt file at path.
//
//nolint:gocritic // defaults copied for immutability
func Open(path string, defaults config.Values) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create directory for bolt database: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(txn *bolt.Tx) error {
		if _, err := txn.CreateBucketIfNotExists([]byte(BucketSettings)); err != nil {
			return fmt.Errorf("failed to create bucket %q: %w", BucketSettings, err)
		}
		return nil
	})
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing bolt database")
		}
		return nil, fmt.Errorf("failed to initialise bolt database: %w", err)
	}

	return &Store{
		bdb:      db,
		path:     path,
		defaults: defaults.Clone(),
	}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load() (*config.Values, error) {
	if s.bdb == nil {
		return nil, ErrClosed
	}

	var data []byte
	err := s.bdb.View(func(txn *bolt.Tx) error {
		b := txn.Bucket([]byte(BucketSettings))
		if b == nil {
			return fmt.Errorf("bucket %q does not exist", BucketSettings)
		}
		v := b.Get([]byte(KeyValues))
		if v == nil {
			return config.ErrNotFound
		}
		// v is only valid for the life of the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	if errors.Is(err, config.ErrNotFound) {
		return nil, config.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to view bolt database: %w", err)
	}

	vals, err := config.DecodeJSON(data, &s.defaults)
	if err != nil {
		return nil, err
	}
	return &vals, nil
}

func (s *Store) Save(v *config.Values) error {
	if s.bdb == nil {
		return ErrClosed
	}

	data, err := config.EncodeJSON(v)
	if err != nil {
		return err
	}

	err = s.bdb.Update(func(txn *bolt.Tx) error {
		b, err := txn.CreateBucketIfNotExists([]byte(BucketSettings))
		if err != nil {
			return fmt.Errorf("failed to create bucket %q: %w", BucketSettings, err)
		}
		if err := b.Put([]byte(KeyValues), data); err != nil {
			return fmt.Errorf("failed to put settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update bolt database: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.bdb == nil {
		return nil
	}
	err := s.bdb.Close()
	s.bdb = nil
	if err != nil {
		return fmt.Errorf("failed to close bolt database: %w", err)
	}
	return nil
}
