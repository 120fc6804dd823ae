package eventlog

import (
	"fmt"
	"io"
	"iter"
	"sync"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Event is a single logged action.
type Event struct {
	Description string
	Date        time.Time
}

func (e Event) String() string {
	return e.Date.In(time.Local).Format(timestampLayout) + " " + e.Description
}

// Option customizes a Log.
type Option func(*Log)

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		if now != nil {
			l.now = now
		}
	}
}

// Log holds the ordered event history.
type Log struct {
	mu     sync.Mutex
	events []Event
	now    func() time.Time
}

// New returns an empty log.
func New(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogEvent appends description stamped with the current time. It never fails.
func (l *Log) LogEvent(description string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, Event{Description: description, Date: l.now()})
}

// Events returns a copy of the history in insertion order.
func (l *Log) Events() []Event {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// All iterates over a snapshot of the history in insertion order.
func (l *Log) All() iter.Seq[Event] {
	events := l.Events()
	return func(yield func(Event) bool) {
		for _, e := range events {
			if !yield(e) {
				return
			}
		}
	}
}

// Len reports how many events have been logged.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// WriteTo prints every event on its own line.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for e := range l.All() {
		n, err := fmt.Fprintln(w, e.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
