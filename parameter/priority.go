package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityRail        = 10 // Before anything reads a rail-derived position
	PriorityGravity     = 20 // After rail, reads start-of-tick attractor positions
	PriorityIntegrator  = 30 // After gravity, moves free bodies with the new velocity
	PriorityScale       = 40
	PriorityDiagnostics = 1000 // After all others, telemetry collection
)
