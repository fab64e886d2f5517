package engine

// ScaleCommand is the optional per-tick scale adjustment
type ScaleCommand uint8

const (
	ScaleNone ScaleCommand = iota
	ScaleIncrease
	ScaleDecrease
)

func (c ScaleCommand) String() string {
	switch c {
	case ScaleIncrease:
		return "increase"
	case ScaleDecrease:
		return "decrease"
	default:
		return "none"
	}
}

// TickInput carries everything supplied from outside the core for one tick
type TickInput struct {
	Scale ScaleCommand
}

// Tick is passed to every system for one simulation step
type Tick struct {
	// Number counts ticks from 1
	Number uint64
	Input  TickInput
}

// Intent is a translated user action consumed by the ClockScheduler between ticks
type Intent uint8

const (
	IntentNone Intent = iota
	IntentZoomIn
	IntentZoomOut
	IntentPause
	IntentQuit

	// View intents belong to the frontend; the scheduler ignores them
	IntentToggleForces
	IntentToggleMute
)

// IsView reports whether the intent only changes presentation
func (i Intent) IsView() bool {
	return i == IntentToggleForces || i == IntentToggleMute
}

// ScaleCommand maps zoom intents to their scale command, others to ScaleNone
func (i Intent) ScaleCommand() ScaleCommand {
	switch i {
	case IntentZoomIn:
		return ScaleIncrease
	case IntentZoomOut:
		return ScaleDecrease
	default:
		return ScaleNone
	}
}

func (i Intent) String() string {
	switch i {
	case IntentZoomIn:
		return "zoom_in"
	case IntentZoomOut:
		return "zoom_out"
	case IntentPause:
		return "pause"
	case IntentQuit:
		return "quit"
	case IntentToggleForces:
		return "toggle_forces"
	case IntentToggleMute:
		return "toggle_mute"
	default:
		return "none"
	}
}
