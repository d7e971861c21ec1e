package display

// DebugState holds debug flags toggled at runtime
type DebugState struct {
	ShowOverlay bool // TPS, frame, ball velocity and rally in the top-left corner
}

// Toggle flips the overlay on or off
func (d *DebugState) Toggle() {
	d.ShowOverlay = !d.ShowOverlay
}
