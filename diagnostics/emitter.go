// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diagnostics provides the asynchronous event side channel used by
// the SDK to report validation errors without blocking the caller.
//
// Core concepts:
//   - Emitter: minimal publish interface consumed by producers such as the
//     configuration validator.
//   - EventEmitter: channel-backed implementation whose listeners run on a
//     dedicated dispatch goroutine, never on the publishing goroutine's
//     stack. Events published during a unit of work are therefore only
//     observable after that unit of work returns.
package diagnostics

import (
	"sync"

	"github.com/google/uuid"
)

// ErrorEvent is the channel name on which structured validation errors are
// published.
const ErrorEvent = "error"

// queueCapacity bounds the number of undelivered events. Publishing past
// the bound blocks until the dispatch goroutine catches up.
const queueCapacity = 64

// Event is the envelope delivered to listeners. Every event carries a
// unique ID so consumers that aggregate diagnostics from several SDK
// instances can deduplicate.
type Event struct {
	// ID is a unique identifier assigned at publish time.
	ID string

	// Name is the channel the event was published on (e.g. "error").
	Name string

	// Payload is the publisher-supplied value, typically an error.
	Payload any
}

// Handler receives events for a channel the caller subscribed to with On.
// Handlers run sequentially on the emitter's dispatch goroutine.
type Handler func(Event)

// Emitter is the publish side of the diagnostics channel.
type Emitter interface {

	// Emit publishes payload on the named channel. Delivery is
	// asynchronous; Emit never invokes listeners on the calling goroutine.
	Emit(name string, payload any)
}

// EventEmitter is the default Emitter implementation. Construct with
// NewEmitter and release with Close.
type EventEmitter struct {
	mu       sync.RWMutex
	handlers map[string][]Handler

	queue   chan Event
	done    chan struct{}
	stopped chan struct{}
	closing sync.Once
}

// NewEmitter creates an EventEmitter and starts its dispatch goroutine.
// The caller owns the emitter and must call Close to stop the goroutine
// and drain any queued events.
func NewEmitter() *EventEmitter {
	e := &EventEmitter{
		handlers: make(map[string][]Handler),
		queue:    make(chan Event, queueCapacity),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	go e.dispatch()

	return e
}

// On subscribes fn to the named channel. Subscriptions are safe to add
// while events are in flight; a handler added after an event was queued may
// or may not observe it.
func (e *EventEmitter) On(name string, fn Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[name] = append(e.handlers[name], fn)
}

// Emit publishes payload on the named channel. The event is queued and
// delivered by the dispatch goroutine; listeners never run on the caller's
// stack. Emit on a closed emitter is a no-op.
func (e *EventEmitter) Emit(name string, payload any) {
	evt := Event{
		ID:      uuid.NewString(),
		Name:    name,
		Payload: payload,
	}

	select {
	case <-e.done:
	case e.queue <- evt:
	}
}

// Close stops the dispatch goroutine after delivering all queued events.
// Close is idempotent and blocks until the queue is drained.
func (e *EventEmitter) Close() {
	e.closing.Do(func() { close(e.done) })
	<-e.stopped
}

// dispatch delivers queued events to subscribed handlers until Close is
// called, then drains whatever is still queued before returning.
func (e *EventEmitter) dispatch() {
	defer close(e.stopped)

	for {
		select {
		case evt := <-e.queue:
			e.deliver(evt)
		case <-e.done:
			for {
				select {
				case evt := <-e.queue:
					e.deliver(evt)
				default:
					return
				}
			}
		}
	}
}

func (e *EventEmitter) deliver(evt Event) {
	e.mu.RLock()
	handlers := e.handlers[evt.Name]
	e.mu.RUnlock()

	for _, fn := range handlers {
		fn(evt)
	}
}
