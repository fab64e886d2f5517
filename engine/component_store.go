package engine

import (
	"github.com/lixenwraith/orrery/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Systems copy it once at construction
type ComponentStore struct {
	// Shared by every body
	Body *Store[component.BodyComponent]

	// Kind records, exactly one per body
	Fixed *Store[component.FixedComponent]
	Rail  *Store[component.RailComponent]
	Free  *Store[component.FreeComponent]

	// Presentation
	Shape *Store[component.ShapeComponent]
}

// initComponentStores allocates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Body:  NewStore[component.BodyComponent](),
		Fixed: NewStore[component.FixedComponent](),
		Rail:  NewStore[component.RailComponent](),
		Free:  NewStore[component.FreeComponent](),
		Shape: NewStore[component.ShapeComponent](),
	}

	w.allStores = []AnyStore{
		w.Components.Body,
		w.Components.Fixed,
		w.Components.Rail,
		w.Components.Free,
		w.Components.Shape,
	}
}
