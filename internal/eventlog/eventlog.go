// Package eventlog records the user-facing interactions with a game as a
// timestamped list of events.
package eventlog

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// InitMessage is the first event of every log.
const InitMessage = "Event Log initialized."

// Event is one logged interaction.
type Event struct {
	Time    time.Time
	Delta   time.Duration // Time since the previous event; zero for the first
	Message string
}

// String formats the event as a single log line.
func (e Event) String() string {
	return fmt.Sprintf("%s +%s %s", e.Time.Format(time.RFC3339Nano), e.Delta, e.Message)
}

// Log is an append-only list of events. It is safe for concurrent use.
type Log struct {
	mu     sync.Mutex
	events []Event
	last   time.Time
	now    func() time.Time
	sink   io.Writer
}

// Option configures a Log.
type Option func(*Log)

// WithClock sets the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// WithSink writes every event to w as it is added.
func WithSink(w io.Writer) Option {
	return func(l *Log) {
		l.sink = w
	}
}

// New creates a log holding the initialisation event.
func New(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	l.last = l.now()
	l.append(Event{Time: l.last, Message: InitMessage})
	return l
}

// Add records an event.
func (l *Log) Add(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	delta := now.Sub(l.last)
	l.last = now
	l.append(Event{Time: now, Delta: delta, Message: message})
}

// Addf records an event built from a format string.
func (l *Log) Addf(format string, args ...interface{}) {
	l.Add(fmt.Sprintf(format, args...))
}

// append stores an event and echoes it to the sink. The caller holds mu
// unless the log is still being constructed.
func (l *Log) append(e Event) {
	l.events = append(l.events, e)
	if l.sink != nil {
		fmt.Fprintln(l.sink, e)
	}
}

// Events returns a copy of the recorded events.
func (l *Log) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Messages returns the message of each recorded event.
func (l *Log) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	for i, e := range l.events {
		out[i] = e.Message
	}
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// String renders the log one event per line.
func (l *Log) String() string {
	var sb strings.Builder
	for _, e := range l.Events() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
