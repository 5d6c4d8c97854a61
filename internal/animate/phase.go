package animate

// Phase is the position of a grid in its regeneration cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseScrambling
	PhaseRevealing
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScrambling:
		return "scrambling"
	case PhaseRevealing:
		return "revealing"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Event drives phase transitions.
type Event uint8

const (
	EventRegenerate Event = iota
	EventRevealStart
	EventRevealDone
)

// Transition returns the phase reached from p on ev. Events that do not apply
// to p leave it unchanged.
func Transition(p Phase, ev Event) Phase {
	switch ev {
	case EventRegenerate:
		return PhaseScrambling
	case EventRevealStart:
		if p == PhaseScrambling {
			return PhaseRevealing
		}
	case EventRevealDone:
		if p == PhaseRevealing {
			return PhaseSettled
		}
	}
	return p
}
