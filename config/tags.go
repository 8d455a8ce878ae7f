// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "regexp"

// Application identifies the application using the SDK for downstream
// telemetry. Both fields are optional tags subject to the token charset and
// length rules; invalid fields are dropped rather than defaulted.
type Application struct {
	// ID is the application identifier tag.
	ID string

	// Version is the application version tag.
	Version string
}

// maxTagValueLength is the upper bound on tag value length.
const maxTagValueLength = 64

// tagValuePattern is the token charset allowed in tag values.
var tagValuePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Tag map keys derived from the application option.
const (
	TagApplicationID      = "application-id"
	TagApplicationVersion = "application-version"
)

// validateApplication normalizes the application option into a
// map[string]string holding only the fields that passed tag validation.
// Accepted inputs are Application values, pointers to them, and loosely
// typed maps with "id"/"version" entries. Each dropped field produces one
// warning naming the offending path and whether the value was malformed or
// too long.
func validateApplication(v any, warn func(string)) map[string]string {
	id, version := applicationFields(v)

	out := make(map[string]string, 2)
	if value, ok := checkTagValue(id, "application.id", warn); ok {
		out["id"] = value
	}
	if value, ok := checkTagValue(version, "application.version", warn); ok {
		out["version"] = value
	}

	return out
}

// applicationFields extracts the raw id and version values from the
// supported application option shapes. A missing field is nil.
func applicationFields(v any) (id, version any) {
	switch app := v.(type) {
	case Application:
		return stringOrNil(app.ID), stringOrNil(app.Version)
	case *Application:
		if app == nil {
			return nil, nil
		}
		return stringOrNil(app.ID), stringOrNil(app.Version)
	case map[string]any:
		return app["id"], app["version"]
	case map[string]string:
		return stringOrNil(app["id"]), stringOrNil(app["version"])
	default:
		return nil, nil
	}
}

func stringOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// checkTagValue applies the tag rules to one field: the value must be a
// string over the token charset [A-Za-z0-9._-] and at most
// maxTagValueLength characters. Violations warn once and drop the field.
func checkTagValue(v any, path string, warn func(string)) (string, bool) {
	if v == nil {
		return "", false
	}

	s, ok := v.(string)
	if !ok || !tagValuePattern.MatchString(s) {
		warn(messageInvalidTagValue(path))
		return "", false
	}

	if len(s) > maxTagValueLength {
		warn(messageTagValueTooLong(path))
		return "", false
	}

	return s, true
}

// GetTags derives the telemetry tag map from a validated configuration.
// Only application fields that are present and valid contribute entries;
// each entry is a single-element list keyed "application-id" or
// "application-version".
func GetTags(cfg Config) map[string][]string {
	tags := make(map[string][]string)

	app, ok := cfg[OptionApplication].(map[string]string)
	if !ok {
		return tags
	}

	if id, ok := app["id"]; ok {
		tags[TagApplicationID] = []string{id}
	}
	if version, ok := app["version"]; ok {
		tags[TagApplicationVersion] = []string{version}
	}

	return tags
}
