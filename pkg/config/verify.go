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
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type catalogCtxKey struct{}

// mappingCheck is the validation view of a MappingEntry.
type mappingCheck struct {
	SourcePath        string `name:"source path" validate:"required"`
	DestinationPath   string `name:"destination path" validate:"required"`
	EmulatorID        string `name:"emulator" validate:"emulator"`
	EmulatorProfileID string `name:"profile"`
	PlatformID        string `name:"platform" validate:"platform"`
	emulatorID        uuid.UUID
}

var mappingValidator = newMappingValidator()

func newMappingValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("name"); name != "" {
			return name
		}
		return f.Name
	})

	_ = v.RegisterValidationCtx("emulator", validateEmulator)
	_ = v.RegisterValidationCtx("platform", validatePlatform)
	v.RegisterStructValidationCtx(validateProfile, mappingCheck{})

	return v
}

func catalogFromCtx(ctx context.Context) catalog.Catalog {
	cat, ok := ctx.Value(catalogCtxKey{}).(catalog.Catalog)
	if !ok {
		return nil
	}
	return cat
}

// validateEmulator checks the emulator exists, if one is set.
func validateEmulator(ctx context.Context, fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	cat := catalogFromCtx(ctx)
	if cat == nil {
		return true
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return false
	}
	_, ok := catalog.FindEmulator(cat, id)
	return ok
}

// validatePlatform checks the platform exists, if one is set.
func validatePlatform(ctx context.Context, fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	cat := catalogFromCtx(ctx)
	if cat == nil {
		return true
	}
	_, ok := catalog.FindPlatform(cat, val)
	return ok
}

// validateProfile checks the profile exists in the selected emulator's
// profile list, if one is set.
func validateProfile(ctx context.Context, sl validator.StructLevel) {
	mc, ok := sl.Current().Interface().(mappingCheck)
	if !ok || mc.EmulatorProfileID == "" {
		return
	}
	cat := catalogFromCtx(ctx)
	if cat == nil {
		return
	}
	if _, ok := catalog.FindProfile(cat, mc.emulatorID, mc.EmulatorProfileID); !ok {
		sl.ReportError(mc.EmulatorProfileID, "profile", "EmulatorProfileID", "profile", "")
	}
}

func formatMappingError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "emulator":
		return fmt.Sprintf("emulator %q not found", fe.Value())
	case "profile":
		return fmt.Sprintf("profile %q not found", fe.Value())
	case "platform":
		return fmt.Sprintf("platform %q not found", fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// VerifyMappings checks a list of mappings and returns one message per
// problem, in mapping order. Catalog checks are skipped when cat is nil.
func VerifyMappings(ms []MappingEntry, cat catalog.Catalog) []string {
	errs := make([]string, 0)
	ctx := context.WithValue(context.Background(), catalogCtxKey{}, cat)

	type pathPair struct {
		source string
		dest   string
	}
	seen := make(map[pathPair]int)

	for i := range ms {
		m := &ms[i]
		prefix := fmt.Sprintf("mapping %d: ", i+1)

		mc := mappingCheck{
			SourcePath:        m.SourcePath,
			DestinationPath:   m.DestinationPath,
			EmulatorProfileID: m.EmulatorProfileID,
			PlatformID:        m.PlatformID,
			emulatorID:        m.EmulatorID,
		}
		if m.EmulatorID != uuid.Nil {
			mc.EmulatorID = m.EmulatorID.String()
		}

		if err := mappingValidator.StructCtx(ctx, mc); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					errs = append(errs, prefix+formatMappingError(fe))
				}
			} else {
				errs = append(errs, prefix+err.Error())
			}
		}

		if !m.Enabled {
			continue
		}
		key := pathPair{source: m.SourcePath, dest: m.DestinationPath}
		if first, ok := seen[key]; ok {
			errs = append(errs, fmt.Sprintf(
				"%sduplicate of mapping %d (source %q, destination %q)",
				prefix, first+1, m.SourcePath, m.DestinationPath,
			))
			continue
		}
		seen[key] = i
	}

	return errs
}

// Verify checks the live values. It never commits or cancels anything;
// callers decide whether to block EndEdit on the result.
func (s *Store) Verify(cat catalog.Catalog) (bool, []string) {
	s.mu.RLock()
	ms := make([]MappingEntry, len(s.vals.Mappings))
	copy(ms, s.vals.Mappings)
	s.mu.RUnlock()

	errs := VerifyMappings(ms, cat)
	if len(errs) > 0 {
		log.Debug().Msgf("settings failed verification: %s", strings.Join(errs, "; "))
	}
	return len(errs) == 0, errs
}
