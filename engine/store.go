package engine

import (
	"sync"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
)

// Store is a generic container for a specific component type T
// Map lookup plus a dense entity slice kept in insertion order for iteration
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, parameter.StoreInitialCapacity),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// RemoveComponent deletes the entity's component, preserving iteration order of the rest
func (s *Store[T]) RemoveComponent(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// HasComponent checks if entity has this component
func (s *Store[T]) HasComponent(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// AllEntity returns a copy of all entities with this component, in insertion order
func (s *Store[T]) AllEntity() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntity returns number of entities with this component
func (s *Store[T]) CountEntity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// ClearAllComponent removes all components from this store
func (s *Store[T]) ClearAllComponent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, parameter.StoreInitialCapacity)
}

// Each calls fn for every entity in insertion order with a copy of its component
// fn must not write to this store
func (s *Store[T]) Each(fn func(e core.Entity, val T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entities {
		fn(e, s.components[e])
	}
}
