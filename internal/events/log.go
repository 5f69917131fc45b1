package events

import "sync"

// Log is the append-only event stream. Mutating engine calls append exactly
// one terminal event; observers subscribe rather than poll. Subscriber
// channels are buffered and drop-on-full so a slow consumer can never block
// an engine transaction.
type Log struct {
	mu      sync.RWMutex
	entries []Event
	subs    map[int]chan Event
	nextSub int
}

func NewLog() *Log {
	return &Log{subs: make(map[int]chan Event)}
}

// Append records the event and fans it out to subscribers.
func (l *Log) Append(e Event) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	for _, ch := range l.subs {
		select {
		case ch <- e:
		default:
		}
	}
	l.mu.Unlock()
}

// Subscribe registers a new consumer. Cancel must be called to release it.
func (l *Log) Subscribe() (<-chan Event, func()) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	ch := make(chan Event, 256)
	l.subs[id] = ch
	l.mu.Unlock()

	cancel := func() {
		l.mu.Lock()
		if _, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(ch)
		}
		l.mu.Unlock()
	}
	return ch, cancel
}

// Snapshot returns a copy of the recorded entries, newest last.
func (l *Log) Snapshot() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Event, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of recorded events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
