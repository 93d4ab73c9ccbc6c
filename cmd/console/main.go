// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/relabs-tech/light_monitor/internal/app"
	"github.com/relabs-tech/light_monitor/internal/config"
)

func main() {
	configPath := flag.String("config", "monitor_config.txt", "path to the KEY=VALUE config file")
	cycleMS := flag.Int("cycle-ms", 1000, "override cycle interval for faster console output")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}
	if *cycleMS > 0 {
		cfg.CycleIntervalMS = *cycleMS
	}

	log.Info().Msg("starting light monitor (simulated sensors)")

	if err := app.RunConsole(cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
