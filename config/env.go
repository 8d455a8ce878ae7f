// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every environment variable name below.
const envPrefix = "ORBITFLAG_"

// envOptions maps environment variables onto baseline option keys. Fields
// are pointers so that only variables that are actually set contribute to
// the raw options; an unset variable must not shadow a value from another
// source with the option's zero value.
type envOptions struct {
	BaseURL                     *string `env:"BASE_URL"`
	StreamURL                   *string `env:"STREAM_URL"`
	EventsURL                   *string `env:"EVENTS_URL"`
	SendEvents                  *bool   `env:"SEND_EVENTS"`
	Streaming                   *bool   `env:"STREAMING"`
	UseReport                   *bool   `env:"USE_REPORT"`
	EvaluationReasons           *bool   `env:"EVALUATION_REASONS"`
	EventCapacity               *int    `env:"EVENT_CAPACITY"`
	FlushInterval               *int    `env:"FLUSH_INTERVAL"`
	SamplingInterval            *int    `env:"SAMPLING_INTERVAL"`
	StreamReconnectDelay        *int    `env:"STREAM_RECONNECT_DELAY"`
	DiagnosticRecordingInterval *int    `env:"DIAGNOSTIC_RECORDING_INTERVAL"`
	DiagnosticOptOut            *bool   `env:"DIAGNOSTIC_OPT_OUT"`
	AllAttributesPrivate        *bool   `env:"ALL_ATTRIBUTES_PRIVATE"`
	WrapperName                 *string `env:"WRAPPER_NAME"`
	WrapperVersion              *string `env:"WRAPPER_VERSION"`
	ApplicationID               *string `env:"APPLICATION_ID"`
	ApplicationVersion          *string `env:"APPLICATION_VERSION"`
}

// parseEnv reads the ORBITFLAG_* environment variables into a RawOptions
// map using the caarlos0/env library. Variables that are not set produce no
// keys at all.
func parseEnv() (RawOptions, error) {
	var parsed envOptions
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env options: %w", err)
	}

	opts := RawOptions{}
	putString := func(name string, v *string) {
		if v != nil {
			opts[name] = *v
		}
	}
	putBool := func(name string, v *bool) {
		if v != nil {
			opts[name] = *v
		}
	}
	putInt := func(name string, v *int) {
		if v != nil {
			opts[name] = *v
		}
	}

	putString(OptionBaseURL, parsed.BaseURL)
	putString(OptionStreamURL, parsed.StreamURL)
	putString(OptionEventsURL, parsed.EventsURL)
	putBool(OptionSendEvents, parsed.SendEvents)
	putBool(OptionStreaming, parsed.Streaming)
	putBool(OptionUseReport, parsed.UseReport)
	putBool(OptionEvaluationReasons, parsed.EvaluationReasons)
	putInt(OptionEventCapacity, parsed.EventCapacity)
	putInt(OptionFlushInterval, parsed.FlushInterval)
	putInt(OptionSamplingInterval, parsed.SamplingInterval)
	putInt(OptionStreamReconnectDelay, parsed.StreamReconnectDelay)
	putInt(OptionDiagnosticRecordingInterval, parsed.DiagnosticRecordingInterval)
	putBool(OptionDiagnosticOptOut, parsed.DiagnosticOptOut)
	putBool(OptionAllAttributesPrivate, parsed.AllAttributesPrivate)
	putString(OptionWrapperName, parsed.WrapperName)
	putString(OptionWrapperVersion, parsed.WrapperVersion)

	if parsed.ApplicationID != nil || parsed.ApplicationVersion != nil {
		app := map[string]any{}
		if parsed.ApplicationID != nil {
			app["id"] = *parsed.ApplicationID
		}
		if parsed.ApplicationVersion != nil {
			app["version"] = *parsed.ApplicationVersion
		}
		opts[OptionApplication] = app
	}

	return opts, nil
}
