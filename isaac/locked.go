package isaac

import "sync"

// Locked is a Stream guarded by a mutex, for generators shared between
// goroutines.
type Locked struct {
	mu     sync.Mutex
	stream *Stream
}

// NewLocked wraps a fresh Stream over state. All draws through the returned
// value are serialized; other users of state must not refill it concurrently.
func NewLocked(state *State) *Locked {
	return &Locked{stream: NewStream(state)}
}

// Uint32 returns the next output word.
func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stream.Uint32()
}

// Uint64 joins two words, high word first, under one lock.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stream.Uint64()
}

// Uniform returns a value uniformly distributed over [0, n], inclusive.
func (l *Locked) Uniform(n uint32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stream.Uniform(n)
}
