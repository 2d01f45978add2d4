package game

// DebugState holds global debug flags that persist across restarts
type DebugState struct {
	ShowStats bool // FPS, clock, particle count and layout in the corner
}

// Global debug state instance
var globalDebugState = &DebugState{
	ShowStats: false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// Toggle flips the stats readout.
func (d *DebugState) Toggle() {
	d.ShowStats = !d.ShowStats
}
