package gui

import "reflect"

// Store is a keyed map of persistent values of one type. Entries live until
// deleted or cleared; they are not tied to node lifetime.
type Store[T any] struct {
	m map[string]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{m: make(map[string]*T)}
}

// GetOrCreate returns the entry for key, creating it from def on first use.
// The returned pointer stays valid until the entry is deleted.
func (s *Store[T]) GetOrCreate(key string, def T) *T {
	if v, ok := s.m[key]; ok {
		return v
	}
	v := new(T)
	*v = def
	s.m[key] = v
	return v
}

func (s *Store[T]) Get(key string) (T, bool) {
	if v, ok := s.m[key]; ok {
		return *v, true
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Set(key string, v T) {
	if p, ok := s.m[key]; ok {
		*p = v
		return
	}
	s.m[key] = &v
}

func (s *Store[T]) Delete(key string) { delete(s.m, key) }
func (s *Store[T]) Clear()            { clear(s.m) }
func (s *Store[T]) Len() int          { return len(s.m) }

type clearer interface{ Clear() }

// StateOf returns g's store for T, creating it on first use.
func StateOf[T any](g *Gui) *Store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := g.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	g.stores[t] = s
	return s
}

// State is shorthand for StateOf[T](g).GetOrCreate(key, def).
func State[T any](g *Gui, key string, def T) *T {
	return StateOf[T](g).GetOrCreate(key, def)
}

// ClearState empties every keyed store, scroll states included.
func (g *Gui) ClearState() {
	for _, s := range g.stores {
		s.Clear()
	}
	clear(g.scrolls)
}
