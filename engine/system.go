package engine

// System is one phase of the per-tick update
type System interface {
	Name() string
	// Priority orders systems within a tick, lower runs first
	Priority() int
	Update(t Tick)
}
