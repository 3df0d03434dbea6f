package forest

// Sink receives each canonical Tree exactly once. A driver (sequential
// or parallel) guarantees at most one concurrent call to Emit — the
// sink itself never needs to synchronize.
type Sink interface {
	Emit(t Tree)
}

// SinkFunc adapts a plain function to the Sink interface, mirroring
// the teacher corpus's callback-heavy style (optitree/uniquetrees.go's
// eval func([]int), tree_generator.h's TreeCallback).
type SinkFunc func(Tree)

// Emit calls f.
func (f SinkFunc) Emit(t Tree) { f(t) }

// CountingSink wraps another Sink and counts how many trees passed
// through it.
type CountingSink struct {
	Sink
	count int
}

// NewCountingSink wraps sink, which may be nil to count without
// forwarding.
func NewCountingSink(sink Sink) *CountingSink {
	return &CountingSink{Sink: sink}
}

// Emit forwards t to the wrapped sink (if any) and increments Count.
func (c *CountingSink) Emit(t Tree) {
	c.count++
	if c.Sink != nil {
		c.Sink.Emit(t)
	}
}

// Count returns the number of trees emitted so far.
func (c *CountingSink) Count() int { return c.count }

// CollectingSink appends every emitted Tree to Trees. Useful in tests
// and anywhere the full result set needs to be held in memory at
// once.
type CollectingSink struct {
	Trees []Tree
}

// Emit appends t to Trees.
func (c *CollectingSink) Emit(t Tree) {
	c.Trees = append(c.Trees, t)
}
