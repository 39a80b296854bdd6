package sheetsync

// State representa a etapa corrente de uma sincronização
type State int

const (
	StateIdle State = iota
	StateFetching
	StateDecoding
	StateMapping
	StateMerging
	StatePersisting
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:       "idle",
	StateFetching:   "fetching",
	StateDecoding:   "decoding",
	StateMapping:    "mapping",
	StateMerging:    "merging",
	StatePersisting: "persisting",
	StateDone:       "done",
	StateFailed:     "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
