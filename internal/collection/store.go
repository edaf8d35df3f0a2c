package collection

// Record is what a Store can hold: something with a string id that can
// produce an independent copy of itself.
type Record[T any] interface {
	RecordID() string
	Clone() T
}

// Store is an ordered sequence of records owned by one page.
type Store[T Record[T]] struct {
	items []T
}

// NewStore copies seed into a fresh store.
func NewStore[T Record[T]](seed []T) *Store[T] {
	s := &Store[T]{items: make([]T, 0, len(seed))}
	for _, rec := range seed {
		s.items = append(s.items, rec.Clone())
	}
	return s
}

// Add appends a copy of rec after every stored record.
func (s *Store[T]) Add(rec T) {
	s.items = append(s.items, rec.Clone())
}

// Update replaces the record with the given id in place.
func (s *Store[T]) Update(id string, rec T) {
	for i := range s.items {
		if s.items[i].RecordID() == id {
			s.items[i] = rec.Clone()
		}
	}
}

// Remove drops every record with the given id. Unknown ids are a no-op.
func (s *Store[T]) Remove(id string) {
	kept := s.items[:0]
	for _, rec := range s.items {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
}

// All returns copies of every record in store order.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	for i, rec := range s.items {
		out[i] = rec.Clone()
	}
	return out
}

// Get returns a copy of the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	for _, rec := range s.items {
		if rec.RecordID() == id {
			return rec.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether a record with the given id is stored.
func (s *Store[T]) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Len is the number of stored records.
func (s *Store[T]) Len() int { return len(s.items) }
