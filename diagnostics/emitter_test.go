// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diagnostics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector subscribes to one channel and records delivered events.
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) handler() Handler {
	return func(evt Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.events = append(c.events, evt)
	}
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// TestNewEmitter_NotNil verifies construction.
func TestNewEmitter_NotNil(t *testing.T) {
	e := NewEmitter()
	require.NotNil(t, e)
	e.Close()
}

// TestEmitter_DeliversToSubscriber verifies that a published event reaches
// a handler subscribed to the same channel, carrying the payload and a
// non-empty unique ID.
func TestEmitter_DeliversToSubscriber(t *testing.T) {
	e := NewEmitter()
	c := &collector{}
	e.On(ErrorEvent, c.handler())

	e.Emit(ErrorEvent, "boom")
	e.Close()

	events := c.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, ErrorEvent, events[0].Name)
	assert.Equal(t, "boom", events[0].Payload)
	assert.NotEmpty(t, events[0].ID)
}

// TestEmitter_EventIDsAreUnique verifies that every event gets its own ID.
func TestEmitter_EventIDsAreUnique(t *testing.T) {
	e := NewEmitter()
	c := &collector{}
	e.On(ErrorEvent, c.handler())

	e.Emit(ErrorEvent, 1)
	e.Emit(ErrorEvent, 2)
	e.Close()

	events := c.snapshot()
	require.Len(t, events, 2)
	assert.NotEqual(t, events[0].ID, events[1].ID)
}

// TestEmitter_ChannelIsolation verifies that handlers only see events for
// the channel they subscribed to.
func TestEmitter_ChannelIsolation(t *testing.T) {
	e := NewEmitter()
	errs := &collector{}
	other := &collector{}
	e.On(ErrorEvent, errs.handler())
	e.On("ready", other.handler())

	e.Emit(ErrorEvent, "x")
	e.Emit("ready", "y")
	e.Close()

	require.Len(t, errs.snapshot(), 1)
	require.Len(t, other.snapshot(), 1)
	assert.Equal(t, "y", other.snapshot()[0].Payload)
}

// TestEmitter_NeverDeliversOnCallerStack verifies that Emit does not invoke
// handlers synchronously on the publishing goroutine.
func TestEmitter_NeverDeliversOnCallerStack(t *testing.T) {
	e := NewEmitter()
	defer e.Close()

	delivered := make(chan struct{})
	block := make(chan struct{})
	e.On(ErrorEvent, func(Event) {
		<-block
		close(delivered)
	})

	// if Emit invoked the handler on this stack it would deadlock here
	e.Emit(ErrorEvent, "x")
	close(block)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("event was never delivered")
	}
}

// TestEmitter_CloseDrainsQueue verifies that Close blocks until everything
// queued before it has been delivered.
func TestEmitter_CloseDrainsQueue(t *testing.T) {
	e := NewEmitter()
	c := &collector{}
	e.On(ErrorEvent, c.handler())

	const n = 20
	for i := 0; i < n; i++ {
		e.Emit(ErrorEvent, i)
	}
	e.Close()

	events := c.snapshot()
	require.Len(t, events, n)
	for i, evt := range events {
		assert.Equal(t, i, evt.Payload, "events must be delivered in publish order")
	}
}

// TestEmitter_CloseIdempotent verifies that calling Close twice neither
// panics nor blocks.
func TestEmitter_CloseIdempotent(t *testing.T) {
	e := NewEmitter()
	e.Close()
	e.Close()
}

// TestEmitter_EmitAfterClose verifies that publishing on a closed emitter
// is a silent no-op.
func TestEmitter_EmitAfterClose(t *testing.T) {
	e := NewEmitter()
	c := &collector{}
	e.On(ErrorEvent, c.handler())
	e.Close()

	e.Emit(ErrorEvent, "late")

	assert.Empty(t, c.snapshot())
}
