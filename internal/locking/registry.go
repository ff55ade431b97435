package locking

import (
	"fmt"
	"sort"
	"sync"
)

// Key builders for the entities the enrollment engine serialises on.
func CourseKey(id int64) string     { return fmt.Sprintf("course:%d", id) }
func StudentKey(id int64) string    { return fmt.Sprintf("student:%d", id) }
func EnrollmentKey(id int64) string { return fmt.Sprintf("enrollment:%d", id) }

// Registry hands out named mutexes. Entries are never removed; the key
// space is bounded by the set of entity IDs in use.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{locks: make(map[string]*sync.Mutex)}
}

func (r *Registry) lock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

// Acquire locks every key in ascending lexicographic order and returns a
// release function that unlocks in reverse order. Acquiring all keys in a
// single total order is what keeps any two operations deadlock-free.
func (r *Registry) Acquire(keys ...string) (release func()) {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	sort.Strings(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, key := range unique {
		l := r.lock(key)
		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
