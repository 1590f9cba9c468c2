package game

// Event is a side-effect request produced by the simulation. The host turns
// events into sounds; the core never plays anything itself.
type Event int

const (
	EventJump Event = iota
	EventScore
	EventDeath
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Events is the ordered list of events emitted by one call into the session.
type Events []Event

// Has reports whether e occurred.
func (ev Events) Has(e Event) bool {
	for _, x := range ev {
		if x == e {
			return true
		}
	}
	return false
}

// Count returns how many times e occurred.
func (ev Events) Count(e Event) int {
	n := 0
	for _, x := range ev {
		if x == e {
			n++
		}
	}
	return n
}
