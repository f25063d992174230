package model

import (
	"fmt"
	"sync"
)

// Entry is one registered model library.
type Entry struct {
	// Name is the library name (e.g. "c3ga").
	Name string

	// Kind and D identify the model this entry provides.
	Kind Kind
	D    int

	// Build constructs the model. It runs at most once per registry.
	Build func() (*Model, error)
}

type instance struct {
	entry Entry
	once  sync.Once
	model *Model
	err   error
}

// Registry maps kind/dimension pairs to lazily built models.
//
// Models register themselves via init(). Lookup builds the model on first
// use and returns the same *Model afterwards. Registry is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	instances []*instance
	sorted    bool
}

// Global is the default registry holding every supported model.
var Global = &Registry{}

// Register adds an entry. A later entry for the same kind and dimension
// replaces the earlier one.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, inst := range r.instances {
		if inst.entry.Kind == entry.Kind && inst.entry.D == entry.D {
			r.instances[i] = &instance{entry: entry}
			return
		}
	}
	r.instances = append(r.instances, &instance{entry: entry})
	r.sorted = false
}

// Lookup returns the model for kind in dimension d.
func (r *Registry) Lookup(kind Kind, d int) (*Model, error) {
	r.mu.RLock()
	var found *instance
	for _, inst := range r.instances {
		if inst.entry.Kind == kind && inst.entry.D == d {
			found = inst
			break
		}
	}
	r.mu.RUnlock()

	if found == nil {
		return nil, unsupported(kind, d)
	}

	found.once.Do(func() {
		if found.entry.Build == nil {
			found.err = fmt.Errorf("model: entry %s has no builder", found.entry.Name)
			return
		}
		found.model, found.err = found.entry.Build()
	})
	return found.model, found.err
}

// LookupName returns the model registered under a library name.
func (r *Registry) LookupName(name string) (*Model, error) {
	r.mu.RLock()
	var kind Kind
	d, ok := 0, false
	for _, inst := range r.instances {
		if inst.entry.Name == name {
			kind, d, ok = inst.entry.Kind, inst.entry.D, true
			break
		}
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: library %q", ErrUnsupported, name)
	}
	return r.Lookup(kind, d)
}

// ListEntries returns a copy of all entries ordered by kind, then dimension.
func (r *Registry) ListEntries() []Entry {
	r.mu.Lock()
	if !r.sorted {
		r.sortEntries()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.instances))
	for i, inst := range r.instances {
		entries[i] = inst.entry
	}
	return entries
}

// sortEntries orders instances by kind and dimension.
// Must be called with r.mu held (write lock).
func (r *Registry) sortEntries() {
	less := func(a, b Entry) bool {
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.D < b.D
	}
	for i := 1; i < len(r.instances); i++ {
		key := r.instances[i]
		j := i - 1
		for j >= 0 && less(key.entry, r.instances[j].entry) {
			r.instances[j+1] = r.instances[j]
			j--
		}
		r.instances[j+1] = key
	}
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances = nil
	r.sorted = false
}

// Lookup returns the model for kind in dimension d from the Global registry.
func Lookup(kind Kind, d int) (*Model, error) {
	return Global.Lookup(kind, d)
}
