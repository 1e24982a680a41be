// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// Options describe the backing to open.
type Options struct {
	Width, Height int

	// Provider is the host's GPU device. Required by the "gpu" backend.
	Provider gpucontext.DeviceProvider

	// ContextOptions are passed to gg.NewContext by the "image" backend.
	ContextOptions []gg.ContextOption
}

// Factory creates a backing.
type Factory func(opts Options) (Backing, error)

// Entry is a registered backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates backings.
	Factory Factory

	// Available reports whether the backend can serve opts.
	Available func(opts Options) bool
}

var globalRegistry = NewRegistry()

// Registry holds named backing factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds a backend to the global registry. A nil available means
// always available. Registering an existing name replaces it.
func Register(name string, priority int, factory Factory, available func(Options) bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority.
func List() []string {
	return globalRegistry.List()
}

// Open creates a backing with the best backend available for opts.
func Open(opts Options) (Backing, error) {
	return globalRegistry.Open(opts)
}

// OpenByName creates a backing with the named backend.
func OpenByName(name string, opts Options) (Backing, error) {
	return globalRegistry.OpenByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func(Options) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func(Options) bool { return true }
	}
	r.entries[name] = &Entry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(nil)
}

// Open tries each backend available for opts in priority order and
// returns the first backing created.
func (r *Registry) Open(opts Options) (Backing, error) {
	r.mu.RLock()
	names := r.sortedNames(&opts)
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, ErrNoBackend
	}
	var lastErr error
	for _, name := range names {
		b, err := r.OpenByName(name, opts)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// OpenByName creates a backing with the named backend.
func (r *Registry) OpenByName(name string, opts Options) (Backing, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available(opts) {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority, highest first,
// then by name. A non-nil opts filters to backends available for it.
// Must be called with lock held.
func (r *Registry) sortedNames(opts *Options) []string {
	entries := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if opts != nil && !e.Available(*opts) {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoBackend is returned when no backend can serve the options.
var ErrNoBackend = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but cannot serve the
// options.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register("image", 10, func(opts Options) (Backing, error) {
		return NewImage(opts.Width, opts.Height, opts.ContextOptions...)
	}, nil)
	Register("gpu", 100, func(opts Options) (Backing, error) {
		return NewGPU(opts.Provider, opts.Width, opts.Height)
	}, func(opts Options) bool {
		return opts.Provider != nil
	})
}
