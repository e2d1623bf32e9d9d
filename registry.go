package trigger

import (
	"io"
	"log/slog"
	"sync"
)

// Registry is an in-memory set of assembled triggers keyed by trigger Key.
// It is the hand-off point between trigger assembly and a scheduler: the
// assembly side registers descriptors, the scheduler side reads them.
// Dispatching and fire-time computation happen elsewhere.
type Registry struct {
	triggers map[Key]*Trigger
	logger   *slog.Logger
	mu       sync.RWMutex
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger for registry operations. If not set, a noop
// logger is used.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty trigger registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		triggers: make(map[Key]*Trigger),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trigger to the registry. Returns ErrDuplicateTrigger when
// a trigger with the same key is already registered.
func (r *Registry) Register(t *Trigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.triggers[t.Key]; exists {
		return ErrDuplicateTrigger
	}
	r.triggers[t.Key] = t
	r.logger.Debug("trigger registered",
		slog.String("key", t.Key.String()),
		slog.String("job", t.JobKey.String()),
	)
	return nil
}

// Get retrieves a trigger by key.
func (r *Registry) Get(k Key) (*Trigger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.triggers[k]
	return t, ok
}

// Unregister removes a trigger by key. Returns ErrTriggerNotFound when no
// trigger with that key is registered.
func (r *Registry) Unregister(k Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.triggers[k]; !exists {
		return ErrTriggerNotFound
	}
	delete(r.triggers, k)
	r.logger.Debug("trigger unregistered", slog.String("key", k.String()))
	return nil
}

// Keys returns the keys of all registered triggers.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]Key, 0, len(r.triggers))
	for k := range r.triggers {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of registered triggers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.triggers)
}
