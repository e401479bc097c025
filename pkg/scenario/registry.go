package scenario

import (
	"sync"

	"github.com/aretw0/holdfast/pkg/domain"
)

// Registry manages the available scenarios in registration order.
// Execution order is declaration order, so the registry preserves it.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]domain.Scenario
	order  []string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]domain.Scenario),
	}
}

// Register adds a scenario to the registry.
// If a scenario with the same name exists, it is overwritten in place,
// keeping its original position in the run order.
func (r *Registry) Register(sc domain.Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[sc.Name]; !ok {
		r.order = append(r.order, sc.Name)
	}
	r.byName[sc.Name] = sc
}

// Get looks up a scenario by name.
func (r *Registry) Get(name string) (domain.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sc, ok := r.byName[name]
	if !ok {
		return domain.Scenario{}, domain.ErrScenarioNotFound
	}
	return sc, nil
}

// All returns every scenario in registration order.
func (r *Registry) All() []domain.Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Scenario, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns the scenario names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered scenarios.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
