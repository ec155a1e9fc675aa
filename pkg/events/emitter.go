package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SSE channel constants. The prelude padding defeats small-packet
// buffering in intermediate proxies; the heartbeat keeps idle
// connections alive between node transitions.
const (
	HeartbeatInterval   = 800 * time.Millisecond
	PreludePaddingChars = 2048
)

// Emitter sequences the events of one streamed request. The workflow
// worker goroutine is the only producer; the SSE handler consumes
// Events() until it is closed.
type Emitter struct {
	sessionID string
	seq       int
	ch        chan Event
	now       func() time.Time
}

// NewEmitter creates an Emitter for one request stream.
func NewEmitter(sessionID string) *Emitter {
	return &Emitter{
		sessionID: sessionID,
		ch:        make(chan Event, 64),
		now:       time.Now,
	}
}

// Events returns the consumer side of the stream. The channel is closed
// when the workflow finishes, successfully or not.
func (e *Emitter) Events() <-chan Event {
	return e.ch
}

// Emit enqueues one event with the next sequence number.
func (e *Emitter) Emit(name, step, status, message string, result any) {
	e.seq++
	e.ch <- Event{
		Name: name,
		Payload: Payload{
			SessionID: e.sessionID,
			Step:      step,
			Status:    status,
			Message:   message,
			Timestamp: e.now().UTC().Format("2006-01-02T15:04:05Z07:00"),
			Seq:       e.seq,
			Result:    result,
		},
	}
}

// Close ends the stream.
func (e *Emitter) Close() {
	close(e.ch)
}

// FormatSSE encodes one event as an SSE frame.
func FormatSSE(ev Event) string {
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		data = []byte(`{"error":"failed to serialize event"}`)
	}
	return fmt.Sprintf("event: %s\ndata: %s\n\n", ev.Name, data)
}

// HeartbeatFrame is the comment line emitted while the stream is idle.
func HeartbeatFrame() string {
	return ": heartbeat\n\n"
}

// PreludeFrame is the one-shot padding comment written at stream start.
func PreludeFrame() string {
	return ": " + strings.Repeat(" ", PreludePaddingChars) + "\n\n"
}
