package alarm

// State is the latch position of an Alarm.
type State int

const (
	// StateIdle is the initial state.
	StateIdle State = iota
	// StateTriggered is terminal for the lifetime of an Alarm.
	StateTriggered
)

// String returns a lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// Alarm latches once a checked value strictly exceeds the threshold.
// It is not safe for concurrent use.
type Alarm struct {
	// threshold is fixed at construction.
	threshold int
	// state is the current latch position.
	state State
}

// New creates an idle alarm. Any threshold is accepted, negative included.
func New(threshold int) *Alarm {
	return &Alarm{
		threshold: threshold,
		state:     StateIdle,
	}
}

// Check latches the alarm when value > threshold.
// Values at or below the threshold never reset it.
func (a *Alarm) Check(value int) {
	if a.state == StateTriggered {
		return
	}

	if value > a.threshold {
		a.state = StateTriggered
	}
}

// IsTriggered reports whether the alarm has latched.
func (a *Alarm) IsTriggered() bool {
	return a.state == StateTriggered
}

// Threshold returns the configured threshold.
func (a *Alarm) Threshold() int {
	return a.threshold
}

// State returns the current latch position.
func (a *Alarm) State() State {
	return a.state
}
