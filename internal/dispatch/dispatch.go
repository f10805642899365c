// Package dispatch routes manual-dispatch callback messages to registered
// handlers and resolves pending asynchronous call results.
package dispatch

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"go.trai.ch/zerr"
)

// completedID is the callback ident of SteamAPICallCompleted_t, which the
// pump emits once per finished async call.
const completedID = 703

// completedSize is the packed size of SteamAPICallCompleted_t.
const completedSize = 16

// Handler consumes the raw payload of one callback message.
type Handler func(data []byte)

// Registration undoes a callback registration.
type Registration struct {
	cancel func()
}

// Unregister removes the handler. Safe to call more than once.
func (r Registration) Unregister() {
	if r.cancel != nil {
		r.cancel()
	}
}

type pendingCall struct {
	id     int32
	size   int
	fn     func(data []byte, failed bool)
	vertex ports.Vertex
}

// Dispatcher owns the per-client callback and call-result registries. All
// handlers run on the goroutine that calls RunFrame, never concurrently
// with each other.
type Dispatcher struct {
	api ports.Dispatch
	log ports.Logger
	tel ports.Telemetry

	mu        sync.Mutex
	nextToken uint64
	callbacks map[int32]map[uint64]Handler
	pending   map[uint64]pendingCall
}

// New creates a Dispatcher over the given pump.
func New(api ports.Dispatch, log ports.Logger, tel ports.Telemetry) *Dispatcher {
	return &Dispatcher{
		api:       api,
		log:       log,
		tel:       tel,
		callbacks: make(map[int32]map[uint64]Handler),
		pending:   make(map[uint64]pendingCall),
	}
}

// Register adds a handler for the given callback ident.
func (d *Dispatcher) Register(id int32, h Handler) Registration {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextToken++
	token := d.nextToken
	if d.callbacks[id] == nil {
		d.callbacks[id] = make(map[uint64]Handler)
	}
	d.callbacks[id][token] = h

	return Registration{cancel: func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.callbacks[id], token)
	}}
}

// RegisterCallResult arranges for fn to run when the async call completes.
// size is the packed size of the expected result struct; failed reports an
// IO failure between the Steam client and the servers.
func (d *Dispatcher) RegisterCallResult(ctx context.Context, call uint64, id int32, size int, fn func(data []byte, failed bool)) {
	_, vertex := d.tel.Record(ctx, fmt.Sprintf("call-result %d", id))

	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[call] = pendingCall{id: id, size: size, fn: fn, vertex: vertex}
}

// PendingCalls reports how many async calls have not completed yet.
func (d *Dispatcher) PendingCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// RunFrame pumps the pipe once and drains every pending message. Handlers
// run synchronously on the calling goroutine.
func (d *Dispatcher) RunFrame() {
	d.api.RunFrame()
	for {
		msg, ok := d.api.Next()
		if !ok {
			return
		}
		if msg.ID == completedID {
			d.resolveCall(msg.Data)
			continue
		}
		for _, h := range d.handlersFor(msg.ID) {
			h(msg.Data)
		}
	}
}

func (d *Dispatcher) handlersFor(id int32) []Handler {
	d.mu.Lock()
	defer d.mu.Unlock()
	hs := make([]Handler, 0, len(d.callbacks[id]))
	for _, h := range d.callbacks[id] {
		hs = append(hs, h)
	}
	return hs
}

func (d *Dispatcher) resolveCall(data []byte) {
	if len(data) < completedSize {
		d.log.Error(zerr.With(zerr.New("short SteamAPICallCompleted payload"), "len", len(data)))
		return
	}
	call := binary.LittleEndian.Uint64(data[0:])

	d.mu.Lock()
	p, ok := d.pending[call]
	if ok {
		delete(d.pending, call)
	}
	d.mu.Unlock()
	if !ok {
		// A call result nobody registered for; the native side still
		// required the fetch-and-free cycle, which the adapter did.
		return
	}

	result, failed, ok := d.api.CallResult(call, p.id, p.size)
	if !ok {
		d.log.Warn("call result vanished before it could be fetched")
		failed = true
		result = nil
	}
	if failed {
		p.vertex.Done(zerr.New("io failure"))
	} else {
		p.vertex.Done(nil)
	}
	p.fn(result, failed)
}
