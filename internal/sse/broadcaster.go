package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard/internal/scoreboard"
)

// EventScoreboard is the SSE event name carrying a scoreboard snapshot.
const EventScoreboard = "scoreboard"

// clientBuffer is how many events a client may fall behind before it is dropped.
const clientBuffer = 8

// Message is one server-sent event.
type Message struct {
	Event string
	Data  string
}

// WriteTo writes the message in event-stream framing.
func (m Message) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if m.Event != "" {
		fmt.Fprintf(&b, "event: %s\n", m.Event)
	}
	for _, line := range strings.Split(m.Data, "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Broadcaster fans messages out to connected clients without ever blocking.
// A client whose buffer is full is disconnected: it is unregistered and its
// channel closed, which ends that client's stream.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[chan Message]struct{}
	logger  *slog.Logger
}

// NewBroadcaster builds an empty Broadcaster.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		clients: make(map[chan Message]struct{}),
		logger:  logger,
	}
}

// AddClient registers a new client and returns its channel. The channel is
// closed if the client is dropped for falling behind.
func (b *Broadcaster) AddClient() <-chan Message {
	ch := make(chan Message, clientBuffer)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// RemoveClient unregisters a client and closes its channel. Removing a
// client that was already dropped is a no-op.
func (b *Broadcaster) RemoveClient(client <-chan Message) {
	b.mu.Lock()
	for ch := range b.clients {
		if ch == client {
			b.dropLocked(ch)
			break
		}
	}
	count := len(b.clients)
	b.mu.Unlock()
	logging.Debug(b.logger, "sse client removed", slog.Int(logging.FieldCount, count))
}

func (b *Broadcaster) dropLocked(ch chan Message) {
	delete(b.clients, ch)
	close(ch)
}

// ClientCount reports the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Broadcast queues msg for every client and returns how many accepted it.
// Clients with a full buffer are dropped.
func (b *Broadcaster) Broadcast(msg Message) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	sent, dropped := 0, 0
	for ch := range b.clients {
		select {
		case ch <- msg:
			sent++
		default:
			b.dropLocked(ch)
			dropped++
		}
	}
	if dropped > 0 {
		logging.Warn(b.logger, "dropped slow sse clients",
			slog.String(logging.FieldEvent, msg.Event),
			slog.Int(logging.FieldCount, dropped),
		)
	}
	return sent
}

// SnapshotMessage encodes a scoreboard snapshot as a scoreboard event.
func SnapshotMessage(snap scoreboard.Snapshot) (Message, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return Message{}, err
	}
	return Message{Event: EventScoreboard, Data: string(data)}, nil
}

// Observer adapts the broadcaster to a scoreboard observer.
func (b *Broadcaster) Observer() scoreboard.Observer {
	return func(snap scoreboard.Snapshot) {
		msg, err := SnapshotMessage(snap)
		if err != nil {
			logging.Error(b.logger, "encode scoreboard event", err)
			return
		}
		b.Broadcast(msg)
	}
}
