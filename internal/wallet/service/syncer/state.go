package syncer

import "fmt"

// State is the sync engine's mode.
type State uint8

const (
	Idle State = iota
	Syncing
	BackgroundSyncing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Syncing:
		return "syncing"
	case BackgroundSyncing:
		return "background_syncing"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}
