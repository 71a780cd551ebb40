package shared

import "github.com/dylan/matchdrag/matching"

// StoreChangedMsg is sent after a drag end replaced the store.
type StoreChangedMsg struct {
	Store *matching.Store
}

// DragStartedMsg is sent when a gesture begins.
type DragStartedMsg struct {
	Origin matching.Region
}

// ResetMsg restores the initial exercise.
type ResetMsg struct{}
