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
	"errors"
	"fmt"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/helpers/syncutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Store owns the live mapping settings. Changes are made directly on the
// live values; BeginEdit, CancelEdit and EndEdit bracket them so a caller
// can either persist a batch of changes or throw them away.
//
// The store does not serialise edit sessions between callers. Hosts that
// share a Store across goroutines must do that themselves.
type Store struct {
	persister Persister
	edit      *snapshot
	vals      Values
	mu        syncutil.RWMutex
}

// snapshot mirrors the mutable fields of Values at BeginEdit.
type snapshot struct {
	mappings       []MappingEntry
	debugLogging   bool
	errorReporting bool
}

func takeSnapshot(v *Values) *snapshot {
	mappings := make([]MappingEntry, len(v.Mappings))
	copy(mappings, v.Mappings)
	return &snapshot{
		mappings:       mappings,
		debugLogging:   v.DebugLogging,
		errorReporting: v.ErrorReporting,
	}
}

func (s *snapshot) restore(v *Values) {
	v.Mappings = make([]MappingEntry, len(s.mappings))
	copy(v.Mappings, s.mappings)
	v.DebugLogging = s.debugLogging
	v.ErrorReporting = s.errorReporting
}

// NewStore creates a store from whatever p has saved. Any load failure is
// logged and the store starts from defaults with no mappings.
//
//nolint:gocritic // defaults copied for immutability
func NewStore(p Persister, defaults Values) *Store {
	s := &Store{persister: p}

	vals, err := loadValues(p)
	switch {
	case errors.Is(err, ErrNotFound):
		log.Info().Msg("no saved settings, starting with empty mappings")
		vals = emptyValues(&defaults)
	case err != nil:
		log.Warn().Err(err).Msg("failed to load settings, starting with empty mappings")
		vals = emptyValues(&defaults)
	default:
		log.Info().Msgf("loaded %d mappings", len(vals.Mappings))
	}

	if vals.Mappings == nil {
		vals.Mappings = []MappingEntry{}
	}
	s.vals = vals
	applyLogLevel(s.vals.DebugLogging)

	return s
}

func emptyValues(defaults *Values) Values {
	v := defaults.Clone()
	v.ConfigSchema = SchemaVersion
	v.Mappings = []MappingEntry{}
	return v
}

func loadValues(p Persister) (Values, error) {
	if p == nil {
		return Values{}, ErrNotFound
	}
	loaded, err := p.Load()
	if err != nil {
		return Values{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if loaded == nil {
		return Values{}, ErrNotFound
	}
	return loaded.Clone(), nil
}

// Reload replaces the live values with what the persister has saved and
// drops any open edit session. Unlike NewStore, failures are returned and
// the live values are left alone.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vals, err := loadValues(s.persister)
	if err != nil {
		return err
	}
	if vals.Mappings == nil {
		vals.Mappings = []MappingEntry{}
	}

	s.vals = vals
	s.edit = nil
	applyLogLevel(s.vals.DebugLogging)

	log.Info().Msgf("reloaded %d mappings", len(s.vals.Mappings))
	return nil
}

// BeginEdit snapshots the current values. Calling it again while an edit is
// open replaces the snapshot.
func (s *Store) BeginEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit != nil {
		log.Debug().Msg("edit already open, replacing snapshot")
	}
	s.edit = takeSnapshot(&s.vals)
}

// CancelEdit restores the values captured by the last BeginEdit and closes
// the edit. It does nothing and returns false when no edit is open, which
// includes after a successful EndEdit.
func (s *Store) CancelEdit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		log.Debug().Msg("cancel edit with no open edit, ignoring")
		return false
	}

	s.edit.restore(&s.vals)
	s.edit = nil
	applyLogLevel(s.vals.DebugLogging)
	return true
}

// EndEdit persists the current values. On failure the returned error wraps
// ErrSaveFailed, the values stay as edited and the edit stays open, so the
// caller can retry or cancel.
func (s *Store) EndEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister == nil {
		return fmt.Errorf("%w: no persister set", ErrSaveFailed)
	}

	s.vals.ConfigSchema = SchemaVersion
	vals := s.vals.Clone()
	if err := s.persister.Save(&vals); err != nil {
		log.Error().Err(err).Msg("failed to save settings")
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.edit = nil
	log.Info().Msgf("saved %d mappings", len(vals.Mappings))
	return nil
}

// Editing reports whether an edit is open.
func (s *Store) Editing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edit != nil
}

// Values returns a deep copy of the live values.
func (s *Store) Values() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals.Clone()
}

// Mappings returns a copy of the live mappings in order.
func (s *Store) Mappings() []MappingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MappingEntry, len(s.vals.Mappings))
	copy(out, s.vals.Mappings)
	return out
}

func (s *Store) Mapping(i int) (MappingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.vals.Mappings) {
		return MappingEntry{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return s.vals.Mappings[i], nil
}

// AddMapping appends a mapping and returns its index.
//
//nolint:gocritic // entries are stored by value
func (s *Store) AddMapping(m MappingEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.Mappings = append(s.vals.Mappings, m)
	return len(s.vals.Mappings) - 1
}

// InsertMapping inserts a mapping before index i. An index equal to the
// number of mappings appends.
//
//nolint:gocritic // entries are stored by value
func (s *Store) InsertMapping(i int, m MappingEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i > len(s.vals.Mappings) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.vals.Mappings = append(s.vals.Mappings, MappingEntry{})
	copy(s.vals.Mappings[i+1:], s.vals.Mappings[i:])
	s.vals.Mappings[i] = m
	return nil
}

//nolint:gocritic // entries are stored by value
func (s *Store) UpdateMapping(i int, m MappingEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.vals.Mappings) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.vals.Mappings[i] = m
	return nil
}

func (s *Store) RemoveMapping(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.vals.Mappings) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.vals.Mappings = append(s.vals.Mappings[:i], s.vals.Mappings[i+1:]...)
	return nil
}

// MoveMapping moves the mapping at from so it ends up at index to, shifting
// the ones in between.
func (s *Store) MoveMapping(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.vals.Mappings)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, from)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, to)
	}
	if from == to {
		return nil
	}

	m := s.vals.Mappings[from]
	if from < to {
		copy(s.vals.Mappings[from:to], s.vals.Mappings[from+1:to+1])
	} else {
		copy(s.vals.Mappings[to+1:from+1], s.vals.Mappings[to:from])
	}
	s.vals.Mappings[to] = m
	return nil
}

// SetMappings replaces all mappings with a copy of ms.
func (s *Store) SetMappings(ms []MappingEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.Mappings = make([]MappingEntry, len(ms))
	copy(s.vals.Mappings, ms)
}

func (s *Store) DebugLogging() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals.DebugLogging
}

func (s *Store) SetDebugLogging(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.DebugLogging = enabled
	applyLogLevel(enabled)
}

func (s *Store) ErrorReporting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals.ErrorReporting
}

func (s *Store) SetErrorReporting(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.ErrorReporting = enabled
}

func applyLogLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
