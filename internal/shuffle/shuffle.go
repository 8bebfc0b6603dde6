// Package shuffle permutes and samples slices using an unbiased bounded
// integer source such as *isaac.Stream.
package shuffle

// Uniformer returns a value uniformly distributed over [0, n].
type Uniformer interface {
	Uniform(n uint32) uint32
}

// Slice shuffles s in place (Fisher-Yates, from the back).
func Slice[T any](s []T, r Uniformer) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(r.Uniform(uint32(i)))
		s[i], s[j] = s[j], s[i]
	}
}

// Sample returns k distinct elements of s chosen uniformly, in random order.
// s is reordered; the sample occupies its first k slots. k is clamped to
// len(s).
func Sample[T any](s []T, k int, r Uniformer) []T {
	if k > len(s) {
		k = len(s)
	}
	if k < 0 {
		k = 0
	}
	for i := 0; i < k; i++ {
		j := i + int(r.Uniform(uint32(len(s)-1-i)))
		s[i], s[j] = s[j], s[i]
	}
	return s[:k]
}

// Deck deals items in a shuffled order.
type Deck[T any] struct {
	items []T
	all   []T
	rng   Uniformer
}

// NewDeck returns a deck holding a copy of items, shuffled with rng.
func NewDeck[T any](items []T, rng Uniformer) *Deck[T] {
	d := &Deck[T]{
		all: append([]T(nil), items...),
		rng: rng,
	}
	d.Reset()
	return d
}

// Shuffle randomizes the order of the undealt items.
func (d *Deck[T]) Shuffle() {
	Slice(d.items, d.rng)
}

// Deal removes and returns the top item.
func (d *Deck[T]) Deal() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}

	item := d.items[0]
	d.items = d.items[1:]
	return item, true
}

// DealN deals up to n items. A negative n deals nothing.
func (d *Deck[T]) DealN(n int) []T {
	if n > len(d.items) {
		n = len(d.items)
	}
	if n < 0 {
		n = 0
	}

	items := make([]T, n)
	copy(items, d.items[:n])
	d.items = d.items[n:]
	return items
}

// Remaining returns the number of undealt items.
func (d *Deck[T]) Remaining() int {
	return len(d.items)
}

// IsEmpty returns true if every item has been dealt.
func (d *Deck[T]) IsEmpty() bool {
	return len(d.items) == 0
}

// Reset restores every item and shuffles.
func (d *Deck[T]) Reset() {
	d.items = append(d.items[:0:0], d.all...)
	d.Shuffle()
}

// Peek returns the top item without dealing it.
func (d *Deck[T]) Peek() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	return d.items[0], true
}
