// Package counter holds the counter widget's state.
package counter

// Store owns a single integer. It has no bounds and is never persisted.
type Store struct {
	count int
}

// New returns a Store starting at zero.
func New() *Store { return &Store{} }

// Count is the current value.
func (s *Store) Count() int { return s.count }

// Increment adds one.
func (s *Store) Increment() { s.count++ }

// Decrement subtracts one; the value may go negative.
func (s *Store) Decrement() { s.count-- }

// Reset sets the value back to zero.
func (s *Store) Reset() { s.count = 0 }
