// Package batch runs independent conversions over a list of inputs.
// Each input is converted in isolation; one failure never aborts the rest.
package batch

// Queue is an ordered input list with deduplication.
// Re-adding an input that was already seen is a no-op.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues an input if it hasn't been seen before.
func (q *Queue) Add(input string) {
	if q.visited[input] {
		return
	}
	q.visited[input] = true
	q.items = append(q.items, input)
}

// HasNext returns true if there are unprocessed inputs.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed input and advances the pointer.
func (q *Queue) Next() string {
	input := q.items[q.idx]
	q.idx++
	return input
}

// All returns the deduplicated inputs in file order.
func (q *Queue) All() []string {
	return q.items
}
