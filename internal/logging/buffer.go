package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Entry is a single captured log record.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string // formatted key=value pairs
}

// RingBuffer keeps the most recent log entries for display in the UI.
type RingBuffer struct {
	mu      sync.RWMutex
	entries []Entry
	head    int
	count   int
	seq     uint64
}

// NewRingBuffer returns a buffer holding at most capacity entries.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{entries: make([]Entry, capacity)}
}

// Add appends an entry, overwriting the oldest when full.
func (b *RingBuffer) Add(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.head] = e
	b.head = (b.head + 1) % len(b.entries)
	if b.count < len(b.entries) {
		b.count++
	}
	b.seq++
}

// All returns the entries oldest first.
func (b *RingBuffer) All() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, b.count)
	start := 0
	if b.count == len(b.entries) {
		start = b.head
	}
	for i := range out {
		out[i] = b.entries[(start+i)%len(b.entries)]
	}
	return out
}

// Recent returns up to n entries, newest first.
func (b *RingBuffer) Recent(n int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n = min(n, b.count)
	if n <= 0 {
		return nil
	}
	size := len(b.entries)
	out := make([]Entry, n)
	for i := range out {
		out[i] = b.entries[(b.head-1-i+size)%size]
	}
	return out
}

// Seq returns the number of entries ever added. The UI compares it between
// frames to tell whether anything new arrived.
func (b *RingBuffer) Seq() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.seq
}

// Len returns the number of entries held.
func (b *RingBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Clear empties the buffer.
func (b *RingBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head, b.count = 0, 0
}

// bufferHandler is a slog.Handler that captures records into a RingBuffer.
type bufferHandler struct {
	buffer *RingBuffer
	level  slog.Leveler
	attrs  []string // pre-formatted, qualified by the group active when added
	group  string
}

func newBufferHandler(buffer *RingBuffer, level slog.Leveler) *bufferHandler {
	return &bufferHandler{buffer: buffer, level: level}
}

func (h *bufferHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *bufferHandler) Handle(_ context.Context, r slog.Record) error {
	parts := append([]string(nil), h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, h.format(a))
		return true
	})
	h.buffer.Add(Entry{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   strings.Join(parts, " "),
	})
	return nil
}

func (h *bufferHandler) format(a slog.Attr) string {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return fmt.Sprintf("%s=%v", key, a.Value.Any())
}

func (h *bufferHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	dup := *h
	dup.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		dup.attrs = append(dup.attrs, h.format(a))
	}
	return &dup
}

func (h *bufferHandler) WithGroup(name string) slog.Handler {
	dup := *h
	if dup.group != "" {
		name = dup.group + "." + name
	}
	dup.group = name
	return &dup
}
