package engine

import (
	"github.com/lixenwraith/orrery/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World clears and counts every store uniformly through it
type AnyStore interface {
	// RemoveComponent deletes a component from an entity
	RemoveComponent(e core.Entity)

	// HasComponent checks if an entity has this component
	HasComponent(e core.Entity) bool

	// CountEntity returns the number of entities with this component
	CountEntity() int

	// ClearAllComponent removes all components from this store
	ClearAllComponent()
}

// QueryableStore extends AnyStore with the entity listing the query builder intersects
type QueryableStore interface {
	AnyStore

	// AllEntity returns all entities that have this component type
	AllEntity() []core.Entity
}
