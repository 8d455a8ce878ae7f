// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// configcheck validates SDK configuration without starting a client.
//
// Raw options are assembled from ORBITFLAG_* environment variables and an
// optional JSON file (-c/-config), validated against the baseline schema,
// and the normalized configuration is printed as JSON together with every
// diagnostic the validator produced.
package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/orbitflag/go-sdk-common/config"
	"github.com/orbitflag/go-sdk-common/diagnostics"
	"github.com/orbitflag/go-sdk-common/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var jsonOptionsPath string
	flag.StringVar(&jsonOptionsPath, "c", "", "JSON options file path")
	flag.StringVar(&jsonOptionsPath, "config", "", "JSON options file path (alias)")
	flag.Parse()

	log := logger.NewLogger("configcheck")

	raw, err := config.NewOptionsBuilder().
		WithEnv().
		WithJSON(jsonOptionsPath).
		Build()
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling raw options")
	}

	emitter := diagnostics.NewEmitter()
	emitter.On(diagnostics.ErrorEvent, func(evt diagnostics.Event) {
		log.Logger.Error().Str("event_id", evt.ID).Str("error", fmt.Sprint(evt.Payload)).Msg("validation error")
	})

	cfg, err := config.Validate(raw, emitter, nil, log)
	if err != nil {
		emitter.Close()
		log.Fatal().Err(err).Msg("validation failed")
	}

	// deliver queued diagnostics before printing
	emitter.Close()

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding validated configuration")
	}

	fmt.Println(string(out))

	if tags := config.GetTags(cfg); len(tags) > 0 {
		log.Logger.Info().Any("tags", tags).Msg("derived telemetry tags")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
