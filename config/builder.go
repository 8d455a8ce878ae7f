package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// OptionsBuilder accumulates raw-option sources and merges them into a
// single RawOptions map. Earlier sources win per key.
type OptionsBuilder struct {
	sources []RawOptions
	err     error
}

// NewOptionsBuilder returns a builder for assembling RawOptions from
// multiple sources. Chain WithEnv and WithJSON, then call Build.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		sources: make([]RawOptions, 0, 2),
	}
}

// Build merges the accumulated sources into one RawOptions map. Keys from
// earlier sources take precedence over later ones.
func (b *OptionsBuilder) Build() (RawOptions, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building options: %w", b.err)
	}

	options := RawOptions{}
	for _, src := range b.sources {
		if err := mergo.Merge(&options, src); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	return options, nil
}

// WithEnv appends the environment-variable source. Only variables that are
// actually set contribute keys.
func (b *OptionsBuilder) WithEnv() *OptionsBuilder {
	envOpts, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envOpts)
	return b
}

// WithJSON appends a JSON-file source. An empty path is a no-op so callers
// can pass an optional flag value straight through.
func (b *OptionsBuilder) WithJSON(path string) *OptionsBuilder {
	if path == "" {
		return b
	}

	jsonOpts, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, jsonOpts)
	return b
}
