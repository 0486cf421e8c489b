// Package store keeps client-side copies of server lists. Lists change
// only after the server confirms a write; nothing is retried or rolled
// back.
package store

import (
	"context"
	"slices"
	"sync"

	"dalu/pkg/client"
	"dalu/pkg/schema"
)

// Keyed is implemented by every stored entity.
type Keyed interface{ Key() uint }

// API is the write half of a resource client.
type API[T, C, U any] interface {
	Create(ctx context.Context, data C) (*T, error)
	Update(ctx context.Context, id uint, data U) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// Lister fetches the current page of a resource.
type Lister[T any] func(ctx context.Context) (*schema.ListResponse[T], error)

type Snapshot[T any] struct {
	Items   []T
	Total   int64
	Loading bool
	Err     string
}

// state is the loading/error bookkeeping and listener set shared by every
// store.
type state struct {
	mu       sync.Mutex
	pending  int
	err      string
	watchers map[int]func()
	nextID   int
}

// begin marks an action in flight and clears the last error.
func (s *state) begin() {
	s.mu.Lock()
	s.pending++
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// end finishes an action. apply runs under the lock when err is nil;
// otherwise the server detail (or fallback) becomes the error message.
func (s *state) end(err error, fallback string, apply func()) error {
	s.mu.Lock()
	s.pending--
	if err != nil {
		if d := client.DetailOf(err); d != "" {
			s.err = d
		} else {
			s.err = fallback
		}
	} else if apply != nil {
		apply()
	}
	s.mu.Unlock()
	s.notify()
	return err
}

func (s *state) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

// Err is the message of the last failed action, or "".
func (s *state) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Watch registers fn to run after every state change and returns a func
// that removes it. fn runs on the goroutine that made the change.
func (s *state) Watch(fn func()) (unwatch func()) {
	s.mu.Lock()
	if s.watchers == nil {
		s.watchers = map[int]func(){}
	}
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

func (s *state) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Store caches one resource list.
type Store[T Keyed, C, U any] struct {
	state
	api   API[T, C, U]
	list  Lister[T]
	msgs  Messages
	items []T
	total int64
}

func New[T Keyed, C, U any](api API[T, C, U], list Lister[T], msgs Messages) *Store[T, C, U] {
	return &Store[T, C, U]{api: api, list: list, msgs: msgs, items: []T{}}
}

// Fetch replaces the list and total with the server's.
func (s *Store[T, C, U]) Fetch(ctx context.Context) error {
	s.begin()
	resp, err := s.list(ctx)
	return s.end(err, s.msgs.Fetch, func() {
		s.items = slices.Clone(resp.Items)
		if s.items == nil {
			s.items = []T{}
		}
		s.total = resp.Total
	})
}

// Create posts data and puts the new entity first.
func (s *Store[T, C, U]) Create(ctx context.Context, data C) (*T, error) {
	s.begin()
	out, err := s.api.Create(ctx, data)
	if err := s.end(err, s.msgs.Create, func() {
		s.items = slices.Insert(s.items, 0, *out)
		s.total++
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the cached entity with the server's copy. An id not in
// the list leaves the list untouched.
func (s *Store[T, C, U]) Update(ctx context.Context, id uint, data U) (*T, error) {
	s.begin()
	out, err := s.api.Update(ctx, id, data)
	if err := s.end(err, s.msgs.Update, func() { s.replace(id, *out) }); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes id from the server and the list. Total drops by one even
// when id was not cached, since the server held it.
func (s *Store[T, C, U]) Delete(ctx context.Context, id uint) error {
	s.begin()
	err := s.api.Delete(ctx, id)
	return s.end(err, s.msgs.Delete, func() {
		s.items = slices.DeleteFunc(s.items, func(v T) bool { return v.Key() == id })
		s.total--
	})
}

// replace must be called with the lock held.
func (s *Store[T, C, U]) replace(id uint, v T) {
	if i := slices.IndexFunc(s.items, func(x T) bool { return x.Key() == id }); i >= 0 {
		s.items[i] = v
	}
}

// Reset drops the cached list and error.
func (s *Store[T, C, U]) Reset() {
	s.mu.Lock()
	s.items = []T{}
	s.total = 0
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// Items returns a copy of the cached list.
func (s *Store[T, C, U]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Store[T, C, U]) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *Store[T, C, U]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{Items: slices.Clone(s.items), Total: s.total, Loading: s.pending > 0, Err: s.err}
}

// view runs fn over the cached list under the lock.
func (s *Store[T, C, U]) view(fn func(items []T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.items)
}
