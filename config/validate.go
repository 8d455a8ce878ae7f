// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/orbitflag/go-sdk-common/diagnostics"
	"github.com/orbitflag/go-sdk-common/logger"
)

// RawOptions is the loosely-typed configuration supplied by the caller.
// Keys the schema does not know are kept in the output but flagged.
type RawOptions map[string]any

// Config is the normalized configuration produced by Validate. It contains
// a value for every schema-defined key: the caller's value if valid, a
// coerced or clamped value if partially valid, or the schema default
// otherwise. A key whose definition has no default may carry nil.
type Config map[string]any

// loggerMethods are the four methods a caller-supplied logger must expose.
var loggerMethods = []string{"Debug", "Info", "Warn", "Error"}

// Validate checks raw against the merged baseline + platform schema and
// returns the normalized configuration.
//
// Recoverable problems (wrong types, unknown options, values below a
// declared minimum) never abort validation: the affected key gets a
// substituted value and a *InvalidArgumentError is published on the
// emitter's "error" channel. Publication is queued during the walk and
// flushed after it completes, so listeners only observe diagnostics after
// Validate has returned. Deprecations and application-tag problems are
// warnings, written synchronously to log.Warn.
//
// The single fatal case is a structurally broken logger supplied under the
// "logger" option: it is checked before anything else and reported as a
// returned error, because a logger that cannot log cannot carry the other
// diagnostics either.
func Validate(raw RawOptions, emitter diagnostics.Emitter, platform Schema, log logger.Interface) (Config, error) {
	if v, ok := raw[OptionLogger]; ok {
		if err := checkLogger(v); err != nil {
			return nil, err
		}
	}

	schema := mergeSchemas(baseSchema, platform)

	warn := func(msg string) {
		if log != nil {
			log.Warn(msg)
		}
	}

	var pending []error
	fail := func(msg string) {
		pending = append(pending, &InvalidArgumentError{Message: msg})
	}

	opts := applyDeprecations(raw, schema, warn)
	cfg := make(Config, len(schema)+len(opts))

	for _, od := range schema {
		if od.ReplacedBy != "" {
			// deprecated aliases never appear in the output
			continue
		}

		value, supplied := opts[od.Name]
		if !supplied || value == nil {
			cfg[od.Name] = od.Default
			continue
		}

		cfg[od.Name] = checkValue(od, value, fail)
	}

	for _, name := range unknownKeys(opts, schema) {
		cfg[name] = opts[name]
		fail(messageUnknownOption(name))
	}

	if app, ok := cfg[OptionApplication]; ok && app != nil {
		cfg[OptionApplication] = validateApplication(app, warn)
	}

	if emitter != nil {
		for _, err := range pending {
			emitter.Emit(diagnostics.ErrorEvent, err)
		}
	}

	return cfg, nil
}

// checkValue applies the type and minimum rules of one definition to a
// supplied value and returns the value to store: the value itself when
// valid, a truthiness-coerced boolean for boolean-typed keys, the clamped
// minimum for out-of-range numbers, and the default for everything else.
func checkValue(od OptionDef, value any, fail func(string)) any {
	expected := od.effectiveType()
	if expected == KindUnset {
		return value
	}

	actual := KindOf(value)
	if actual != expected {
		// booleans coerce; every other kind falls back to the default
		if expected == KindBool {
			fail(messageWrongTypeBoolean(od.Name, actual))
			return truthy(value)
		}
		fail(messageWrongType(od.Name, expected, actual))
		return od.Default
	}

	if expected == KindNumber && od.HasMinimum {
		if f, ok := asFloat(value); ok && f < float64(od.Minimum) {
			fail(messageBelowMinimum(od.Name, value, od.Minimum))
			return od.Minimum
		}
	}

	return value
}

// applyDeprecations copies raw and, in schema order, rewrites deprecated
// keys: a key with a replacement moves its value to the replacement key
// (unless the replacement was supplied too) and disappears; a deprecated
// key without a replacement stays put. Both produce a warning.
func applyDeprecations(raw RawOptions, schema Schema, warn func(string)) RawOptions {
	opts := make(RawOptions, len(raw))
	for name, value := range raw {
		opts[name] = value
	}

	for _, od := range schema {
		if !od.Deprecated {
			continue
		}
		value, ok := opts[od.Name]
		if !ok {
			continue
		}

		warn(messageDeprecated(od.Name, od.ReplacedBy))

		if od.ReplacedBy != "" {
			if _, taken := opts[od.ReplacedBy]; !taken {
				opts[od.ReplacedBy] = value
			}
			delete(opts, od.Name)
		}
	}

	return opts
}

// unknownKeys returns the keys of opts absent from the schema, sorted so
// that diagnostics are deterministic.
func unknownKeys(opts RawOptions, schema Schema) []string {
	known := make(map[string]struct{}, len(schema))
	for _, od := range schema {
		known[od.Name] = struct{}{}
	}

	var unknown []string
	for name := range opts {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// checkLogger verifies that a caller-supplied logger value exposes callable
// Debug, Info, Warn and Error methods. Func-typed struct fields count as
// methods so that loggers assembled from closures are accepted. Any missing
// or non-callable method is fatal.
func checkLogger(v any) error {
	if v == nil {
		return ErrInvalidLogger
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ErrInvalidLogger
		}
	}

	for _, name := range loggerMethods {
		if !hasCallable(rv, name) {
			return fmt.Errorf("%w: missing %s method", ErrInvalidLogger, strings.ToLower(name))
		}
	}

	return nil
}

// hasCallable reports whether rv exposes a callable method or non-nil
// func-typed field with the given name.
func hasCallable(rv reflect.Value, name string) bool {
	if m := rv.MethodByName(name); m.IsValid() {
		return true
	}

	elem := rv
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		if f := elem.FieldByName(name); f.IsValid() && f.Kind() == reflect.Func && !f.IsNil() {
			return true
		}
	}

	return false
}
