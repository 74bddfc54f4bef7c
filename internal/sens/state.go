package sens

// State is a step in a single ticker submission. Invalid, NoData and Done
// are terminal.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateFetching
	StateNoData
	StateExtracting
	StateDone
)

var stateNames = [...]string{
	StateIdle:       "idle",
	StateValidating: "validating",
	StateInvalid:    "invalid",
	StateFetching:   "fetching",
	StateNoData:     "no-data",
	StateExtracting: "extracting",
	StateDone:       "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) Terminal() bool {
	return s == StateInvalid || s == StateNoData || s == StateDone
}
