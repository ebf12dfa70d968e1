package lucide

import (
	"context"
	"slices"
	"sync"
)

// Store is an observable holder of the attributes shared by all icons
// rendered under one context. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	attrs *Attributes
	subs  []subscription
	next  int

	// pending holds changes not yet delivered. Only the goroutine that set
	// draining delivers them, one at a time and in order.
	pending  []*Attributes
	draining bool
}

type subscription struct {
	id int
	fn func(*Attributes)
}

// NewStore returns a store holding a copy of attrs, or the defaults when
// attrs is nil.
func NewStore(attrs *Attributes) *Store {
	if attrs == nil {
		attrs = New()
	}
	return &Store{attrs: attrs.Clone()}
}

// Get returns a copy of the current attributes.
func (s *Store) Get() *Attributes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attrs.Clone()
}

// Set replaces the attributes and notifies subscribers. A Set made from
// inside a subscriber is delivered after the current change has reached
// every subscriber.
func (s *Store) Set(attrs *Attributes) {
	s.mu.Lock()
	s.attrs = attrs.Clone()
	s.enqueue()
}

// Update applies fn to a copy of the current attributes and stores the
// result.
func (s *Store) Update(fn func(*Attributes)) {
	s.mu.Lock()
	next := s.attrs.Clone()
	fn(next)
	s.attrs = next
	s.enqueue()
}

// Subscribe registers fn to be called with the new attributes after every
// change. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(*Attributes)) (cancel func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// enqueue queues the current value for delivery and releases s.mu. Called
// with s.mu held.
func (s *Store) enqueue() {
	s.pending = append(s.pending, s.attrs)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()
	s.drain()
}

func (s *Store) drain() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		attrs := s.pending[0]
		s.pending[0] = nil
		s.pending = s.pending[1:]
		subs := slices.Clone(s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(attrs.Clone())
		}
	}
}

type storeKey struct{}

// Provide returns a context carrying store. Components rendered with the
// returned context read their attributes from it.
func Provide(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// FromContext returns the store provided to ctx, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(storeKey{}).(*Store)
	return store, ok && store != nil
}

// Current returns the attributes in effect for ctx: the provided store's
// value, or the defaults when nothing was provided.
func Current(ctx context.Context) *Attributes {
	if store, ok := FromContext(ctx); ok {
		return store.Get()
	}
	return New()
}
