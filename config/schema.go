// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Definition is the declarative rule set for a single configuration key:
// its default value, expected type, optional lower bound, and deprecation
// status.
type Definition struct {
	// Default is the value used when the caller supplies none, and the
	// substitute when a supplied value fails a non-boolean type check.
	// A nil Default means the key has no usable fallback.
	Default any

	// Type is the expected Kind of the value. KindUnset means the type is
	// inferred from Default's runtime kind when a default is present.
	Type Kind

	// HasMinimum declares a lower bound for number-typed keys.
	HasMinimum bool

	// Minimum is the lower bound applied when HasMinimum is set. Supplied
	// values below it are clamped to it.
	Minimum int

	// Deprecated marks the key as deprecated. Supplying it produces a
	// warning.
	Deprecated bool

	// ReplacedBy names the key that supersedes a deprecated one. When set,
	// a supplied value is moved to the replacement key and the deprecated
	// key is dropped from the output.
	ReplacedBy string
}

// effectiveType resolves the Kind a supplied value is checked against:
// the declared Type, or the classification of Default when Type is unset.
func (d Definition) effectiveType() Kind {
	if d.Type != KindUnset {
		return d.Type
	}
	return KindOf(d.Default)
}

// OptionDef is a named Definition. Schemas are ordered slices of OptionDef
// so that per-key processing and diagnostics are deterministic.
type OptionDef struct {
	Name string
	Definition
}

// Schema is an ordered option-definition table. The baseline schema covers
// every option the SDK core understands; platforms may supply an extension
// Schema with additional keys.
type Schema []OptionDef

// Option keys understood by the baseline schema. String constants rather
// than an enum because raw options arrive as loosely-typed string-keyed
// maps.
const (
	// OptionBaseURL is the polling service URL.
	OptionBaseURL = "baseUrl"

	// OptionStreamURL is the streaming service URL.
	OptionStreamURL = "streamUrl"

	// OptionEventsURL is the events service URL.
	OptionEventsURL = "eventsUrl"

	// OptionSendEvents enables analytics event delivery.
	OptionSendEvents = "sendEvents"

	// OptionStreaming forces streaming mode on or off. No default: when
	// unset, the connection manager chooses based on subscriptions.
	OptionStreaming = "streaming"

	// OptionUseReport switches flag requests from GET to REPORT.
	OptionUseReport = "useReport"

	// OptionEvaluationReasons requests evaluation reasons from the service.
	OptionEvaluationReasons = "evaluationReasons"

	// OptionEventCapacity is the analytics event buffer size.
	OptionEventCapacity = "eventCapacity"

	// OptionFlushInterval is the analytics flush interval in milliseconds.
	OptionFlushInterval = "flushInterval"

	// OptionSamplingInterval is the event sampling interval.
	OptionSamplingInterval = "samplingInterval"

	// OptionStreamReconnectDelay is the initial stream reconnect delay in
	// milliseconds.
	OptionStreamReconnectDelay = "streamReconnectDelay"

	// OptionDiagnosticRecordingInterval is the diagnostics reporting
	// interval in milliseconds.
	OptionDiagnosticRecordingInterval = "diagnosticRecordingInterval"

	// OptionDiagnosticOptOut disables periodic diagnostic reporting.
	OptionDiagnosticOptOut = "diagnosticOptOut"

	// OptionAllAttributesPrivate marks every context attribute private.
	OptionAllAttributesPrivate = "allAttributesPrivate"

	// OptionPrivateAttributes lists attribute names to keep private.
	OptionPrivateAttributes = "privateAttributes"

	// OptionInspectors lists caller-supplied inspection hooks.
	OptionInspectors = "inspectors"

	// OptionWrapperName identifies a wrapper SDK, if any.
	OptionWrapperName = "wrapperName"

	// OptionWrapperVersion is the wrapper SDK version.
	OptionWrapperVersion = "wrapperVersion"

	// OptionRequestHeaderTransform is a hook that may alter outbound
	// request headers.
	OptionRequestHeaderTransform = "requestHeaderTransform"

	// OptionApplication holds the application id/version tag substructure.
	// Validated by the tag rules rather than the generic type check.
	OptionApplication = "application"

	// OptionLogger is the caller-supplied logger. Checked structurally
	// before any other validation; see Validate.
	OptionLogger = "logger"

	// OptionAllowFrequentDuplicateEvents is deprecated with no
	// replacement; event deduplication is now controlled service-side.
	OptionAllowFrequentDuplicateEvents = "allowFrequentDuplicateEvents"

	// Deprecated spellings of the service URLs, superseded by the *Url
	// names.
	OptionBaseURI   = "baseUri"
	OptionStreamURI = "streamUri"
	OptionEventsURI = "eventsUri"
)

// baseSchema is the baseline option table. Order matters: per-key
// processing and default filling walk the schema in this order.
var baseSchema = Schema{
	{Name: OptionBaseURL, Definition: Definition{Default: "https://app.orbitflag.io"}},
	{Name: OptionStreamURL, Definition: Definition{Default: "https://stream.orbitflag.io"}},
	{Name: OptionEventsURL, Definition: Definition{Default: "https://events.orbitflag.io"}},
	{Name: OptionSendEvents, Definition: Definition{Default: true}},
	{Name: OptionStreaming, Definition: Definition{Type: KindBool}},
	{Name: OptionUseReport, Definition: Definition{Default: false}},
	{Name: OptionEvaluationReasons, Definition: Definition{Default: false}},
	{Name: OptionEventCapacity, Definition: Definition{Default: 100, HasMinimum: true, Minimum: 1}},
	{Name: OptionFlushInterval, Definition: Definition{Default: 2000, HasMinimum: true, Minimum: 2000}},
	{Name: OptionSamplingInterval, Definition: Definition{Default: 0, HasMinimum: true, Minimum: 0}},
	{Name: OptionStreamReconnectDelay, Definition: Definition{Default: 1000, HasMinimum: true, Minimum: 0}},
	{Name: OptionDiagnosticRecordingInterval, Definition: Definition{Default: 900000, HasMinimum: true, Minimum: 2000}},
	{Name: OptionDiagnosticOptOut, Definition: Definition{Default: false}},
	{Name: OptionAllAttributesPrivate, Definition: Definition{Default: false}},
	{Name: OptionPrivateAttributes, Definition: Definition{Default: []string{}}},
	{Name: OptionInspectors, Definition: Definition{Default: []any{}}},
	{Name: OptionWrapperName, Definition: Definition{Type: KindString}},
	{Name: OptionWrapperVersion, Definition: Definition{Type: KindString}},
	{Name: OptionRequestHeaderTransform, Definition: Definition{Type: KindFunc}},
	{Name: OptionApplication, Definition: Definition{Type: KindObject}},
	{Name: OptionLogger, Definition: Definition{}},
	{Name: OptionAllowFrequentDuplicateEvents, Definition: Definition{Default: false, Deprecated: true}},
	{Name: OptionBaseURI, Definition: Definition{Deprecated: true, ReplacedBy: OptionBaseURL}},
	{Name: OptionStreamURI, Definition: Definition{Deprecated: true, ReplacedBy: OptionStreamURL}},
	{Name: OptionEventsURI, Definition: Definition{Deprecated: true, ReplacedBy: OptionEventsURL}},
}

// BaseSchema returns a copy of the baseline option table. Callers may
// inspect it but cannot alter the schema the validator uses.
func BaseSchema() Schema {
	out := make(Schema, len(baseSchema))
	copy(out, baseSchema)
	return out
}

// mergeSchemas unions the baseline table with a platform extension table
// into one resolved, ordered schema. Baseline entries win on key collision;
// extension entries keep their relative order after the baseline.
func mergeSchemas(base, extension Schema) Schema {
	merged := make(Schema, 0, len(base)+len(extension))
	seen := make(map[string]struct{}, len(base)+len(extension))

	for _, def := range base {
		merged = append(merged, def)
		seen[def.Name] = struct{}{}
	}

	for _, def := range extension {
		if _, ok := seen[def.Name]; ok {
			continue
		}
		merged = append(merged, def)
		seen[def.Name] = struct{}{}
	}

	return merged
}

// lookup builds the name-to-definition index for a resolved schema.
func (s Schema) lookup() map[string]Definition {
	idx := make(map[string]Definition, len(s))
	for _, def := range s {
		idx[def.Name] = def.Definition
	}
	return idx
}
