package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/davidbz/lessongen/internal/domain"
)

// Registry implements the domain.AdapterRegistry interface.
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.ProviderName]domain.ProviderAdapter
}

// NewRegistry creates a new adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:       sync.RWMutex{},
		adapters: make(map[domain.ProviderName]domain.ProviderAdapter),
	}
}

// Register adds an adapter to the registry.
func (r *Registry) Register(_ context.Context, adapter domain.ProviderAdapter) error {
	if adapter == nil {
		return errors.New("adapter cannot be nil")
	}

	name := adapter.Name()
	if name == "" {
		return errors.New("adapter name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("adapter %s already registered", name)
	}

	r.adapters[name] = adapter

	return nil
}

// Get retrieves the adapter for a provider.
func (r *Registry) Get(_ context.Context, name domain.ProviderName) (domain.ProviderAdapter, error) {
	if name == "" {
		return nil, errors.New("provider name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, exists := r.adapters[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrAdapterNotFound, name)
	}

	return adapter, nil
}

// List returns the registered provider names, sorted.
func (r *Registry) List(_ context.Context) ([]domain.ProviderName, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]domain.ProviderName, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// Missing returns the providers in want that have no registered adapter.
func (r *Registry) Missing(_ context.Context, want []domain.ProviderName) []domain.ProviderName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missing []domain.ProviderName
	for _, name := range want {
		if _, exists := r.adapters[name]; !exists {
			missing = append(missing, name)
		}
	}
	return missing
}
