package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitflag/go-sdk-common/diagnostics"
	"github.com/orbitflag/go-sdk-common/logger"
)

// TestValidate_ErrorsFlushAfterReturn verifies the asynchronous diagnostics
// contract end to end: with a real emitter, error events are only
// observable after Validate has returned, and draining the emitter yields
// every queued diagnostic.
func TestValidate_ErrorsFlushAfterReturn(t *testing.T) {
	emitter := diagnostics.NewEmitter()

	var mu sync.Mutex
	var seen []error
	gate := make(chan struct{})
	emitter.On(diagnostics.ErrorEvent, func(evt diagnostics.Event) {
		<-gate
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, evt.Payload.(error))
	})

	cfg, err := Validate(RawOptions{
		OptionSendEvents:    "abc",
		OptionEventCapacity: 0,
	}, emitter, nil, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Validate has returned; nothing can have been observed yet
	mu.Lock()
	assert.Empty(t, seen)
	mu.Unlock()

	close(gate)
	emitter.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	for _, err := range seen {
		var argErr *InvalidArgumentError
		assert.ErrorAs(t, err, &argErr)
	}
}
