// Package catalog holds the static list of models the orchestrator may call.
// The catalog is built once at startup, either from the built-in defaults
// or from a YAML file, and is read-only afterwards. Watcher swaps in a
// freshly loaded Catalog when its YAML file changes.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/lessongen/internal/domain"
)

// Catalog implements domain.ModelRegistry.
type Catalog struct {
	models []domain.Model
	byName map[string]domain.Model
}

// file is the on-disk YAML layout.
type file struct {
	Models []domain.Model `yaml:"models"`
}

// New validates models and builds a catalog.
func New(models []domain.Model) (*Catalog, error) {
	if len(models) == 0 {
		return nil, errors.New("catalog cannot be empty")
	}

	byName := make(map[string]domain.Model, len(models))
	for i, m := range models {
		if err := validate(m); err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		if _, exists := byName[m.Name]; exists {
			return nil, fmt.Errorf("model %s defined twice", m.Name)
		}
		byName[m.Name] = m
	}

	list := make([]domain.Model, len(models))
	copy(list, models)

	return &Catalog{models: list, byName: byName}, nil
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Models)
}

// List returns all models in definition order.
func (c *Catalog) List(_ context.Context) []domain.Model {
	list := make([]domain.Model, len(c.models))
	copy(list, c.models)
	return list
}

// Get looks up a model by name.
func (c *Catalog) Get(name string) (domain.Model, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// Providers returns the distinct providers referenced by the catalog.
func (c *Catalog) Providers() []domain.ProviderName {
	seen := make(map[domain.ProviderName]bool)
	var providers []domain.ProviderName
	for _, m := range c.models {
		if !seen[m.Provider] {
			seen[m.Provider] = true
			providers = append(providers, m.Provider)
		}
	}
	return providers
}

func validate(m domain.Model) error {
	if m.Name == "" {
		return errors.New("model name cannot be empty")
	}
	if !m.Provider.Valid() {
		return fmt.Errorf("model %s: unknown provider %q", m.Name, m.Provider)
	}
	if !m.Tier.Valid() {
		return fmt.Errorf("model %s: unknown tier %q", m.Name, m.Tier)
	}
	if m.DailyLimit <= 0 {
		return fmt.Errorf("model %s: daily limit must be positive", m.Name)
	}
	return nil
}
