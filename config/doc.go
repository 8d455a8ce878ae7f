// Package config validates and normalizes user-supplied SDK configuration.
//
// The core entry point is [Validate]: it takes loosely-typed raw options, a
// diagnostics emitter, an optional platform extension schema, and a logger,
// and returns a fully-populated [Config] in which every schema-defined key
// has a value. Recoverable problems are reported through the diagnostics
// side channel (errors asynchronously on the emitter, warnings
// synchronously on the logger) and never abort validation.
//
// Raw options can be assembled from multiple sources with
// [NewOptionsBuilder], which merges environment variables and an optional
// JSON file in priority order (earlier sources win per key).
package config
