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

// Package config holds the emulator mapping settings: the values that are
// persisted, the codec used to persist them, and the Store which wraps them
// in an edit/commit/cancel lifecycle.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "EMULIBRARY_CFG"
)

var (
	// ErrNotFound is returned by a Persister that has nothing saved yet.
	ErrNotFound = errors.New("settings not found")
	// ErrSaveFailed wraps any error returned while persisting an edit.
	ErrSaveFailed = errors.New("failed to save settings")
	// ErrSchemaMismatch is returned when decoding settings written by an
	// incompatible version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
	// ErrIndexOutOfRange is returned by mapping accessors given a bad index.
	ErrIndexOutOfRange = errors.New("mapping index out of range")
)

// Values is everything the Store persists.
type Values struct {
	Mappings       []MappingEntry
	ConfigSchema   int
	DebugLogging   bool
	ErrorReporting bool
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Mappings:     []MappingEntry{},
}

// Clone returns a deep copy of v.
//
//nolint:gocritic // copied on purpose
func (v Values) Clone() Values {
	out := v
	if v.Mappings != nil {
		out.Mappings = make([]MappingEntry, len(v.Mappings))
		copy(out.Mappings, v.Mappings)
	}
	return out
}

// valuesRecord is the persisted layout shared by the TOML and JSON codecs.
type valuesRecord struct {
	Mappings       []mappingRecord `toml:"mappings,omitempty" json:"mappings,omitempty"`
	ConfigSchema   int             `toml:"config_schema" json:"config_schema"`
	DebugLogging   bool            `toml:"debug_logging" json:"debug_logging"`
	ErrorReporting bool            `toml:"error_reporting" json:"error_reporting"`
}

// mappingRecord keeps Enabled as a pointer so an absent key can be told
// apart from false. EmulatorID is parsed leniently for the same reason.
type mappingRecord struct {
	Enabled           *bool  `toml:"enabled,omitempty" json:"enabled,omitempty"`
	EmulatorID        string `toml:"emulator_id" json:"emulator_id"`
	EmulatorProfileID string `toml:"emulator_profile_id" json:"emulator_profile_id"`
	PlatformID        string `toml:"platform_id" json:"platform_id"`
	SourcePath        string `toml:"source_path" json:"source_path"`
	DestinationPath   string `toml:"destination_path" json:"destination_path"`
	GamesUseFolders   bool   `toml:"games_use_folders" json:"games_use_folders"`
}

func toRecord(v *Values) valuesRecord {
	r := valuesRecord{
		ConfigSchema:   SchemaVersion,
		DebugLogging:   v.DebugLogging,
		ErrorReporting: v.ErrorReporting,
		Mappings:       make([]mappingRecord, len(v.Mappings)),
	}
	for i, m := range v.Mappings {
		enabled := m.Enabled
		id := ""
		if m.EmulatorID != uuid.Nil {
			id = m.EmulatorID.String()
		}
		r.Mappings[i] = mappingRecord{
			Enabled:           &enabled,
			EmulatorID:        id,
			EmulatorProfileID: m.EmulatorProfileID,
			PlatformID:        m.PlatformID,
			SourcePath:        m.SourcePath,
			DestinationPath:   m.DestinationPath,
			GamesUseFolders:   m.GamesUseFolders,
		}
	}
	return r
}

func fromRecord(r *valuesRecord) (Values, error) {
	if r.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			r.ConfigSchema,
			SchemaVersion,
		)
		return Values{}, ErrSchemaMismatch
	}

	v := Values{
		ConfigSchema:   r.ConfigSchema,
		DebugLogging:   r.DebugLogging,
		ErrorReporting: r.ErrorReporting,
		Mappings:       make([]MappingEntry, len(r.Mappings)),
	}
	for i, mr := range r.Mappings {
		m := NewMappingEntry()
		if mr.Enabled != nil {
			m.Enabled = *mr.Enabled
		}
		if mr.EmulatorID != "" {
			id, err := uuid.Parse(mr.EmulatorID)
			if err != nil {
				log.Warn().Msgf("mapping %d: invalid emulator id: %s", i+1, mr.EmulatorID)
			} else {
				m.EmulatorID = id
			}
		}
		m.EmulatorProfileID = mr.EmulatorProfileID
		m.PlatformID = mr.PlatformID
		m.SourcePath = mr.SourcePath
		m.DestinationPath = mr.DestinationPath
		m.GamesUseFolders = mr.GamesUseFolders
		v.Mappings[i] = m
	}
	return v, nil
}

// defaultRecord seeds a record with defaults so keys missing from the
// input keep their default value.
func defaultRecord(defaults *Values) valuesRecord {
	return valuesRecord{
		ConfigSchema:   SchemaVersion,
		DebugLogging:   defaults.DebugLogging,
		ErrorReporting: defaults.ErrorReporting,
	}
}

// EncodeTOML serialises settings in the settings file format.
func EncodeTOML(v *Values) ([]byte, error) {
	r := toRecord(v)
	data, err := toml.Marshal(&r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// DecodeTOML parses the settings file format on top of defaults. Unknown
// keys are ignored and mappings without an enabled key are enabled.
func DecodeTOML(data []byte, defaults *Values) (Values, error) {
	r := defaultRecord(defaults)
	if err := toml.Unmarshal(data, &r); err != nil {
		return Values{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return fromRecord(&r)
}

// EncodeJSON serialises settings as a JSON blob, for key/value backends.
func EncodeJSON(v *Values) ([]byte, error) {
	r := toRecord(v)
	data, err := json.Marshal(&r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// DecodeJSON is the JSON counterpart of DecodeTOML.
func DecodeJSON(data []byte, defaults *Values) (Values, error) {
	r := defaultRecord(defaults)
	if err := json.Unmarshal(data, &r); err != nil {
		return Values{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return fromRecord(&r)
}
