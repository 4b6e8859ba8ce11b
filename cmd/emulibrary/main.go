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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/zaparoo-emulibrary/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/cli"
	"github.com/ZaparooProject/zaparoo-emulibrary/pkg/helpers"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		telemetry.Flush()
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)

	verbose := flag.Bool(
		"verbose",
		false,
		"also write logs to stderr",
	)

	exit, err := flags.Pre(os.Args[1:], os.Stdout)
	if exit || err != nil {
		return err
	}

	var logWriters []io.Writer
	if *verbose {
		logWriters = []io.Writer{helpers.ConsoleWriter(os.Stderr)}
	}

	app, err := cli.Setup(flags, logWriters)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing app")
		}
	}()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	err = flags.Post(app, os.Stdout)
	if errors.Is(err, cli.ErrNoCommand) {
		flag.Usage()
		return nil
	}
	return err
}
