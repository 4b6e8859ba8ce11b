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

package mocks

import (
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPersister is a testify mock for config.Persister.
//
// Example:
//
//	p := &MockPersister{}
//	p.On("Load").Return(nil, config.ErrNotFound)
//	p.On("Save", mock.Anything).Return(nil)
type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) Load() (*config.Values, error) {
	args := m.Called()
	vals, _ := args.Get(0).(*config.Values)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return vals, args.Error(1)
}

func (m *MockPersister) Save(v *config.Values) error {
	args := m.Called(v)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return args.Error(0)
}

// MockCatalog is a testify mock for catalog.Catalog.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Emulators() []catalog.Emulator {
	args := m.Called()
	if emus, ok := args.Get(0).([]catalog.Emulator); ok {
		return emus
	}
	return nil
}

func (m *MockCatalog) Profiles(emulatorID uuid.UUID) []catalog.Profile {
	args := m.Called(emulatorID)
	if profiles, ok := args.Get(0).([]catalog.Profile); ok {
		return profiles
	}
	return nil
}

func (m *MockCatalog) Platforms() []catalog.Platform {
	args := m.Called()
	if platforms, ok := args.Get(0).([]catalog.Platform); ok {
		return platforms
	}
	return nil
}

// MockInstallMode is a testify mock for install.Mode.
type MockInstallMode struct {
	mock.Mock
}

func (m *MockInstallMode) IsPortable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockInstallMode) AppRootPath() string {
	args := m.Called()
	return args.String(0)
}
