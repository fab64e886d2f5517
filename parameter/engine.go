package parameter

// Tick pacing
const (
	// TickRate is the target number of simulation ticks per second
	TickRate = 60

	// MaxTickRate bounds the --tick-rate flag
	MaxTickRate = 1000

	// IntentQueueSize buffers translated key intents between ticks
	IntentQueueSize = 64
)

// ECS store defaults
const (
	// StoreInitialCapacity pre-sizes the entity slice of every component store
	StoreInitialCapacity = 16
)
