package engine

import (
	"sort"

	"github.com/lixenwraith/orrery/core"
)

// QueryBuilder finds entities present in every given store
// Intersection starts from the smallest store
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	attractors := world.Query().
//	    With(world.Components.Body).
//	    With(world.Components.Fixed).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities present in all stores, cached on repeat calls
// Result order follows the insertion order of the smallest store
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].AllEntity()
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntity() < qb.stores[j].CountEntity()
	})

	candidates := qb.stores[0].AllEntity()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasComponent(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
