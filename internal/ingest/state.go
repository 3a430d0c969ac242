package ingest

// State tracks pipeline progress explicitly; rollback scope is decided from
// the machine, never inferred from what happens to exist on disk.
type State int

const (
	StateInspecting State = iota
	StateMaterializing
	StateBuilding
	StateResolving
	StateReconciling
	StateCommitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInspecting:
		return "inspecting"
	case StateMaterializing:
		return "materializing"
	case StateBuilding:
		return "building"
	case StateResolving:
		return "resolving"
	case StateReconciling:
		return "reconciling"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
